package demo

import optional "github.com/cvpartner/optional-field"

//optional:fields
type Profile struct {
	DisplayName optional.Field[string] `json:"display_name"`
	Age         optional.Field[int]
	Email       string `json:"email"`
}
