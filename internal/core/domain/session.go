package domain

import "github.com/shopspring/decimal"

// UserSession is the signed-in user as the session collaborator stores it.
// AccountBalance is authoritative only as of the last update this service
// knows about.
type UserSession struct {
	ID             int64           `json:"id"`
	Username       string          `json:"username"`
	IsAdmin        bool            `json:"isAdmin"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
}
