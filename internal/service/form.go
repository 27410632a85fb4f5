package service

import (
	"net/url"
	"sort"
	"strings"

	"github.com/Behyna/cc5mock/internal/model"
)

// Accepted field names per logical 3DS form field. Matching ignores case, so
// okURL also covers okUrl, okurl and OKURL.
var (
	oidAliases       = []string{"oid", "orderId", "order_id"}
	okURLAliases     = []string{"okURL", "ok_url"}
	amountAliases    = []string{"amount", "total"}
	panAliases       = []string{"pan", "cardNumber"}
	rndAliases       = []string{"rnd"}
	storeTypeAliases = []string{"storetype", "store_type"}
)

const (
	DefaultOid       = "UNKNOWN_OID"
	DefaultAmount    = "0.00"
	DefaultStoreType = "3d"
)

// LookupField returns the first non-empty value whose name matches one of
// aliases, trying aliases in order.
func LookupField(fields url.Values, aliases ...string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, alias := range aliases {
		for _, key := range keys {
			if !strings.EqualFold(key, alias) {
				continue
			}
			for _, value := range fields[key] {
				if v := strings.TrimSpace(value); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

func parseThreeDSForm(fields url.Values) model.ThreeDSForm {
	return model.ThreeDSForm{
		Oid:       withDefault(LookupField(fields, oidAliases...), DefaultOid),
		OkURL:     LookupField(fields, okURLAliases...),
		Amount:    withDefault(LookupField(fields, amountAliases...), DefaultAmount),
		Pan:       LookupField(fields, panAliases...),
		Rnd:       LookupField(fields, rndAliases...),
		StoreType: withDefault(LookupField(fields, storeTypeAliases...), DefaultStoreType),
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// MaskPAN keeps the first and last four characters. Inputs shorter than
// eight characters mask to the empty string.
func MaskPAN(pan string) string {
	chars := []rune(pan)
	if len(chars) < 8 {
		return ""
	}
	return string(chars[:4]) + " **** **** " + string(chars[len(chars)-4:])
}

// BuildCallbackURL appends the encoded params to okURL.
func BuildCallbackURL(okURL string, params model.CallbackParams) string {
	sep := "?"
	if strings.Contains(okURL, "?") {
		sep = "&"
	}
	return okURL + sep + params.Encode()
}
