package model

import (
	"net/url"
	"strings"

	"github.com/Behyna/cc5mock/pkg/callback"
)

type ThreeDSForm struct {
	Oid       string
	OkURL     string `validate:"required"`
	Amount    string
	Pan       string
	Rnd       string
	StoreType string
}

type CallbackParams struct {
	OrderID          string
	SystemTransID    string
	Result           string
	TotalAmount      string
	InstallmentCount string
	Hash             string
	MDStatus         string
	MaskedCreditCard string
	StoreType        string
	Rnd              string
}

// Pairs returns the params as ordered name/value pairs, in the order the
// merchant receives them.
func (p CallbackParams) Pairs() [][2]string {
	return [][2]string{
		{"OrderId", p.OrderID},
		{"SystemTransId", p.SystemTransID},
		{"Result", p.Result},
		{"TotalAmount", p.TotalAmount},
		{"InstallmentCount", p.InstallmentCount},
		{"Hash", p.Hash},
		{"MDStatus", p.MDStatus},
		{"maskedCreditCard", p.MaskedCreditCard},
		{"storetype", p.StoreType},
		{"rnd", p.Rnd},
	}
}

// Encode builds a query string keeping the order of Pairs.
func (p CallbackParams) Encode() string {
	var sb strings.Builder
	for i, pair := range p.Pairs() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(pair[0]))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(pair[1]))
	}
	return sb.String()
}

type ThreeDSResult struct {
	Form        ThreeDSForm
	Params      CallbackParams
	CallbackURL string
	Callback    callback.Result
}
