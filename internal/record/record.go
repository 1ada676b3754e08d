package record

import "fmt"

// Recipient is one (role, address-list) pair on a tracked message.
// Role is the header the addresses came from ("To", "Cc", ...).
type Recipient struct {
	Role      string   `json:"role"`
	Addresses []string `json:"addresses"`
}

// Record represents one tracked item.
//
// A Record is immutable once stored except for Group, which is updated
// in place when the tracked message moves to another container. The
// store never interprets DisplayLine, Date, or References; they are
// produced and consumed by the host.
type Record struct {
	DisplayLine string      `json:"display_line"`
	Group       string      `json:"group"`
	MessageID   string      `json:"message_id"`
	Date        string      `json:"date"`
	Subject     string      `json:"subject"`
	Sender      string      `json:"sender"`
	Recipients  []Recipient `json:"recipients,omitempty"`
	References  string      `json:"references,omitempty"`
	InReplyTo   string      `json:"in_reply_to,omitempty"`
}

// Validate checks that the record can be stored.
// MessageID is the collection key and must be non-empty.
func (r Record) Validate() error {
	if r.MessageID == "" {
		return fmt.Errorf("record has empty message_id")
	}
	return nil
}

// Normalized returns a copy of the record with its Group in NFC normal
// form. Stored records always carry normalized group names.
func (r Record) Normalized() Record {
	r.Group = NormalizeGroup(r.Group)
	return r
}
