package model

import "encoding/xml"

const CC5RequestElement = "CC5Request"

type AuthRequest struct {
	XMLName  xml.Name
	OrderID  string `xml:"OrderId" validate:"required"`
	ClientID string `xml:"ClientId"`
	Type     string `xml:"Type"`
	Total    string `xml:"Total"`
}

type AuthResponse struct {
	XMLName        xml.Name `xml:"CC5Response"`
	OrderID        string   `xml:"OrderId,omitempty"`
	GroupID        string   `xml:"GroupId,omitempty"`
	Response       string   `xml:"Response"`
	AuthCode       string   `xml:"AuthCode,omitempty"`
	HostRefNum     string   `xml:"HostRefNum,omitempty"`
	ProcReturnCode string   `xml:"ProcReturnCode"`
	TransID        string   `xml:"TransId,omitempty"`
	ErrMsg         string   `xml:"ErrMsg"`
	Extra          *Extra   `xml:"Extra,omitempty"`
}

type Extra struct {
	SettleID      string `xml:"SETTLEID"`
	TrxDate       string `xml:"TRXDATE"`
	ErrorCode     string `xml:"ERRORCODE"`
	CardBrand     string `xml:"CARDBRAND"`
	CardIssuer    string `xml:"CARDISSUER"`
	LoyaltyPoints string `xml:"KAZANILANPUAN"`
	NumCode       string `xml:"NUMCODE"`
}

// TrxDateLayout is the CC5 TRXDATE layout, e.g. "20251107 13:21:07".
const TrxDateLayout = "20060102 15:04:05"

type Pong struct {
	XMLName xml.Name `xml:"pong"`
	Time    string   `xml:"time,attr"`
}
