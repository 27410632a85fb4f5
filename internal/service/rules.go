package service

import (
	"strings"
	"time"

	"github.com/Behyna/cc5mock/internal/constants"
	"github.com/Behyna/cc5mock/internal/model"
)

// Rule pairs a request predicate with the response it produces.
type Rule struct {
	Name  string
	Match func(req model.AuthRequest) bool
	Build func(req model.AuthRequest, now time.Time) model.AuthResponse
}

// RuleTable is an ordered, read-only list of rules. The first matching rule
// wins; a request no rule matches is answered NotMatched by the caller.
type RuleTable struct {
	rules []Rule
}

func NewRuleTable(rules ...Rule) RuleTable {
	return RuleTable{rules: append([]Rule(nil), rules...)}
}

func DefaultRuleTable() RuleTable {
	return NewRuleTable(ApprovedAuthRule)
}

func (t RuleTable) Match(req model.AuthRequest) (Rule, bool) {
	for _, rule := range t.rules {
		if rule.Match(req) {
			return rule, true
		}
	}
	return Rule{}, false
}

func (t RuleTable) Len() int {
	return len(t.rules)
}

const approvedClientID = "190100000"

var ApprovedAuthRule = Rule{
	Name: "approved-auth",
	Match: func(req model.AuthRequest) bool {
		return req.ClientID == approvedClientID && strings.EqualFold(req.Type, "AUTH")
	},
	Build: func(req model.AuthRequest, now time.Time) model.AuthResponse {
		return model.AuthResponse{
			OrderID:        req.OrderID,
			GroupID:        req.OrderID,
			Response:       constants.ResponseApproved,
			AuthCode:       "621715",
			HostRefNum:     "531113545069",
			ProcReturnCode: constants.ProcReturnApproved,
			TransID:        "25311NVIA12472",
			Extra: &model.Extra{
				SettleID:      "2885",
				TrxDate:       now.Format(model.TrxDateLayout),
				CardBrand:     "MASTERCARD",
				CardIssuer:    "AKBANK T.A.S.",
				LoyaltyPoints: "000000010.00",
				NumCode:       "00",
			},
		}
	},
}
