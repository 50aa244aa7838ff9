package utils

import (
	"time"

	"github.com/misterclayt0n/keima/internal/models"
)

var SPLoc *time.Location

func init() {
	var err error
	SPLoc, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Systems without tzdata fall back to the fixed offset.
		SPLoc = time.FixedZone("BRT", -3*60*60)
	}
}

// FormatSaoPaulo returns the provided time formatted in São Paulo local time.
func FormatSaoPaulo(t time.Time) string {
	return t.In(SPLoc).Format("02/01/2006 15:04")
}

// FormatDate turns a YYYY-MM-DD date into the pt-BR dd/mm/yyyy form. Input
// that does not parse is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
