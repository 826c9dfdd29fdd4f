package agegate

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/litlifesoftware/lit-ui-kit/internal/config"
)

// ErrNoBirthDate is returned when a vCard stream contains no BDAY property
// that can seed the gate.
var ErrNoBirthDate = errors.New(config.ErrNoBirthDate)

// ErrYearUnknown is returned for truncated BDAY values (--MM-DD). An age
// cannot be verified without a birth year, so these never prefill the gate.
var ErrYearUnknown = errors.New(config.ErrDateNoYear)

// BirthDateFromVCard extracts the first usable birth date from a vCard
// stream, letting hosts prefill the age-confirmation screen from a contact
// card instead of manual entry. Malformed cards are skipped; the first card
// carrying a parseable BDAY wins.
func BirthDateFromVCard(r io.Reader) (time.Time, error) {
	decoder := vcard.NewDecoder(r)

	sawYearless := false

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip malformed cards to maximize data recovery.
			slog.Debug(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompAgeGate,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, err := parseBirthDate(bday.Value)
		if errors.Is(err, ErrYearUnknown) {
			sawYearless = true
			continue
		}
		if err != nil {
			continue
		}
		return birth, nil
	}

	if sawYearless {
		return time.Time{}, ErrYearUnknown
	}
	return time.Time{}, ErrNoBirthDate
}

// parseBirthDate handles the vCard BDAY formats.
func parseBirthDate(value string) (time.Time, error) {
	// Full dates (year known)
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	// Truncated dates (year unknown) - vCard specific
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if _, err := time.Parse(f, value); err == nil {
			return time.Time{}, ErrYearUnknown
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
