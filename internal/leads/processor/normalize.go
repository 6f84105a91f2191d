package processor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"leads-server/internal/spreadsheet"
	"leads-server/internal/store"

	"github.com/xuri/excelize/v2"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Accepted header spellings per field, highest priority first
var (
	leadIDHeaders        = []string{"id", "leadid", "lead id", "lead_id"}
	addressStreetHeaders = []string{"addressstreet", "address street"}
	facebookHeaders      = []string{"facebooklink", "facebook link"}
	websiteHeaders       = []string{"websitelink", "website link"}
	googleMapHeaders     = []string{"googlemaplink", "google map link"}
	lastVerifiedHeaders  = []string{"lastverifiedat", "last verified at"}
)

var lastVerifiedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

type rowOutcome int

const (
	rowValid rowOutcome = iota
	rowBlank
	rowInvalid
)

// normalizedRow maps lower-cased trimmed headers to trimmed values
type normalizedRow map[string]string

func normalize(row spreadsheet.Row) normalizedRow {
	n := make(normalizedRow, len(row.Cells))
	for _, c := range row.Cells {
		n[strings.ToLower(strings.TrimSpace(c.Header))] = strings.TrimSpace(c.Value)
	}
	return n
}

// first returns the value of the first header with a non-empty value
func (n normalizedRow) first(headers ...string) string {
	for _, h := range headers {
		if v := n[h]; v != "" {
			return v
		}
	}
	return ""
}

func (n normalizedRow) optional(headers ...string) *string {
	v := n.first(headers...)
	if v == "" {
		return nil
	}
	return &v
}

// validateRow resolves a spreadsheet row into lead fields.
// A rejected row carries its report message.
func validateRow(row spreadsheet.Row) (store.LeadFields, rowOutcome, string) {
	n := normalize(row)

	leadID := n.first(leadIDHeaders...)
	name := n.first("name")
	email := n.first("email")

	if leadID == "" && name == "" && email == "" {
		return store.LeadFields{}, rowBlank, ""
	}
	if leadID == "" {
		return store.LeadFields{}, rowInvalid, fmt.Sprintf("Row %d: Missing Lead ID (column: id or leadId)", row.Number)
	}
	if name == "" {
		return store.LeadFields{}, rowInvalid, fmt.Sprintf("Row %d: Missing Name", row.Number)
	}
	if email == "" {
		return store.LeadFields{}, rowInvalid, fmt.Sprintf("Row %d: Missing Email", row.Number)
	}
	if !emailPattern.MatchString(email) {
		return store.LeadFields{}, rowInvalid, fmt.Sprintf("Row %d: Invalid email format: %s", row.Number, email)
	}

	return store.LeadFields{
		LeadID:         leadID,
		Name:           name,
		Email:          strings.ToLower(email),
		Phone:          n.optional("phone"),
		Category:       n.optional("category"),
		City:           n.optional("city"),
		Country:        n.optional("country"),
		AddressStreet:  n.optional(addressStreetHeaders...),
		LinkedIn:       n.optional("linkedin"),
		FacebookLink:   n.optional(facebookHeaders...),
		WebsiteLink:    n.optional(websiteHeaders...),
		GoogleMapLink:  n.optional(googleMapHeaders...),
		Instagram:      n.optional("instagram"),
		LastVerifiedAt: parseLastVerified(n.first(lastVerifiedHeaders...)),
	}, rowValid, ""
}

// parseLastVerified accepts common date layouts and Excel serial dates.
// Anything else is treated as absent.
func parseLastVerified(v string) *time.Time {
	if v == "" {
		return nil
	}
	for _, layout := range lastVerifiedLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return &t
		}
	}
	return nil
}
