package sanmar

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// SOAP envelope construction for the vendor's two inventory services. Both
// services reject envelopes with stray whitespace in credentials, so every
// value is trimmed before it is written.

const (
	promoStandardsNS       = "http://www.promostandards.org/WSDL/Inventory/2.0.0/"
	promoStandardsSharedNS = "http://www.promostandards.org/WSDL/Inventory/2.0.0/SharedObjects/"
	standardServiceNS      = "http://webservice.integration.sanmar.com/"
)

// standardSOAPAction returns the fully-qualified SOAPAction header value the
// legacy WebServicePort expects, quoted per the SOAP 1.1 convention.
func standardSOAPAction(method string) string {
	return `"` + standardServiceNS + method + `"`
}

// promoStandardsEnvelope builds a GetInventoryLevelsRequest, optionally
// narrowed by label sizes, part colors, or part IDs through the shared
// Filter element.
func promoStandardsEnvelope(username, password, productID string, labelSizes, partColors, partIDs []string) string {
	var b strings.Builder
	b.WriteString(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"`)
	b.WriteString(` xmlns:ns="` + promoStandardsNS + `"`)
	b.WriteString(` xmlns:shar="` + promoStandardsSharedNS + `">` + "\n")
	b.WriteString("<soapenv:Header />\n<soapenv:Body>\n")
	b.WriteString("<ns:GetInventoryLevelsRequest>\n")
	writeTag(&b, "shar", "wsVersion", "2.0.0")
	writeTag(&b, "shar", "id", strings.TrimSpace(username))
	writeTag(&b, "shar", "password", strings.TrimSpace(password))
	writeTag(&b, "shar", "productId", strings.TrimSpace(productID))

	if len(labelSizes) > 0 || len(partColors) > 0 || len(partIDs) > 0 {
		b.WriteString("<shar:Filter>\n")
		if len(labelSizes) > 0 {
			b.WriteString("<shar:LabelSizeArray>\n")
			for _, s := range labelSizes {
				writeTag(&b, "shar", "labelSize", s)
			}
			b.WriteString("</shar:LabelSizeArray>\n")
		}
		if len(partColors) > 0 {
			b.WriteString("<shar:PartColorArray>\n")
			for _, c := range partColors {
				writeTag(&b, "shar", "partColor", c)
			}
			b.WriteString("</shar:PartColorArray>\n")
		}
		if len(partIDs) > 0 {
			b.WriteString("<shar:partIdArray>\n")
			for _, id := range partIDs {
				writeTag(&b, "shar", "partId", id)
			}
			b.WriteString("</shar:partIdArray>\n")
		}
		b.WriteString("</shar:Filter>\n")
	}

	b.WriteString("</ns:GetInventoryLevelsRequest>\n")
	b.WriteString("</soapenv:Body>\n</soapenv:Envelope>\n")
	return b.String()
}

// standardMethod picks the WebServicePort operation name; the ByWhse variant
// takes a trailing warehouse argument.
func standardMethod(byWarehouse bool) string {
	if byWarehouse {
		return "getInventoryQtyForStyleColorSizeByWhse"
	}
	return "getInventoryQtyForStyleColorSize"
}

// standardEnvelope builds a legacy WebServicePort request. Arguments are
// positional (arg0..argN): customer number, username, password, style, then
// optional color, size, and warehouse number.
func standardEnvelope(customerNo, username, password, style, color, size, whseNo string, byWarehouse bool) string {
	method := standardMethod(byWarehouse)

	var b strings.Builder
	b.WriteString(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" `)
	b.WriteString(`xmlns:web="` + standardServiceNS + `">` + "\n")
	b.WriteString("<soapenv:Header />\n<soapenv:Body>\n")
	b.WriteString("<web:" + method + ">\n")

	args := []string{
		strings.TrimSpace(customerNo),
		strings.TrimSpace(username),
		strings.TrimSpace(password),
		strings.TrimSpace(style),
	}
	if c := strings.TrimSpace(color); c != "" {
		args = append(args, c)
	}
	if s := strings.TrimSpace(size); s != "" {
		args = append(args, s)
	}
	if byWarehouse {
		args = append(args, strings.TrimSpace(whseNo))
	}
	for i, v := range args {
		tag := "arg" + strconv.Itoa(i)
		b.WriteString("<" + tag + ">")
		b.WriteString(xmlEscape(v))
		b.WriteString("</" + tag + ">\n")
	}

	b.WriteString("</web:" + method + ">\n")
	b.WriteString("</soapenv:Body>\n</soapenv:Envelope>\n")
	return b.String()
}

func writeTag(b *strings.Builder, prefix, name, value string) {
	b.WriteString("<" + prefix + ":" + name + ">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</" + prefix + ":" + name + ">\n")
}

func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
