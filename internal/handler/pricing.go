package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freckles-ink/printdesk/internal/domain"
	"github.com/freckles-ink/printdesk/internal/pricing"
)

// PricingHandler serves the quote calculators.
type PricingHandler struct {
	logger *slog.Logger
}

func NewPricingHandler(logger *slog.Logger) *PricingHandler {
	return &PricingHandler{logger: logger}
}

// Quote handles POST /api/quote/{kind}, dispatching to the calculator
// named by the path segment.
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")

	var (
		quote any
		err   error
	)
	switch kind {
	case "screenprint":
		var in pricing.ScreenprintInput
		if err = decodeJSON(r, &in); err == nil {
			quote = pricing.Screenprint(in)
		}
	case "embroidery":
		var in pricing.EmbroideryInput
		if err = decodeJSON(r, &in); err == nil {
			quote = pricing.Embroidery(in)
		}
	case "stickers":
		var in pricing.StickerInput
		if err = decodeJSON(r, &in); err == nil {
			quote, err = pricing.Stickers(in)
		}
	case "magnets":
		var in pricing.MagnetInput
		if err = decodeJSON(r, &in); err == nil {
			quote = pricing.Magnets(in)
		}
	case "patches":
		var in pricing.PatchInput
		if err = decodeJSON(r, &in); err == nil {
			quote, err = pricing.Patches(in)
		}
	case "signs":
		var in pricing.SignProjectInput
		if err = decodeJSON(r, &in); err == nil {
			quote = pricing.SignProject(in)
		}
	case "store":
		var in pricing.StorePricingInput
		if err = decodeJSON(r, &in); err == nil {
			quote = pricing.StorePricing(in)
		}
	default:
		respondError(w, r, h.logger, domain.NotFound("pricing.quote", "calculator", kind))
		return
	}

	if err != nil {
		respondError(w, r, h.logger, quoteError(kind, err))
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// quoteError maps calculator failures onto domain errors. Every failure a
// calculator can report today is a bad input.
func quoteError(kind string, err error) error {
	if domain.ErrorCode(err) == domain.EINVALID {
		return err
	}
	switch {
	case errors.Is(err, pricing.ErrInvalidDimensions):
		return domain.WrapError(err, domain.EINVALID, "pricing."+kind, "Dimensions and quantity must be positive and fit the material")
	case errors.Is(err, pricing.ErrUnknownPreset):
		return domain.WrapError(err, domain.EINVALID, "pricing."+kind, "Unknown material or preset")
	default:
		return domain.Internal(err, "pricing."+kind, "Quote calculation failed")
	}
}
