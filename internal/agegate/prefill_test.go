package agegate_test

import (
	"strings"
	"testing"
	"time"

	"github.com/litlifesoftware/lit-ui-kit/internal/agegate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthDateFromVCard_FullDate(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:John Doe
BDAY:2000-01-01
END:VCARD`

	birth, err := agegate.BirthDateFromVCard(strings.NewReader(vcardContent))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), birth)
}

func TestBirthDateFromVCard_BasicFormat(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:3.0
FN:Jane Roe
BDAY:19950215
END:VCARD`

	birth, err := agegate.BirthDateFromVCard(strings.NewReader(vcardContent))
	require.NoError(t, err)
	assert.Equal(t, 1995, birth.Year())
	assert.Equal(t, time.February, birth.Month())
	assert.Equal(t, 15, birth.Day())
}

// TestBirthDateFromVCard_Yearless ensures truncated dates (--MM-DD) are
// rejected with a dedicated error: an age needs a birth year.
func TestBirthDateFromVCard_Yearless(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:No Year
BDAY:--02-29
END:VCARD`

	_, err := agegate.BirthDateFromVCard(strings.NewReader(vcardContent))
	assert.ErrorIs(t, err, agegate.ErrYearUnknown)
}

func TestBirthDateFromVCard_NoBirthday(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:No Birthday
END:VCARD`

	_, err := agegate.BirthDateFromVCard(strings.NewReader(vcardContent))
	assert.ErrorIs(t, err, agegate.ErrNoBirthDate)
}

// TestBirthDateFromVCard_FirstUsableWins verifies recovery behavior: cards
// without a parseable BDAY are skipped, the first usable date is returned.
func TestBirthDateFromVCard_FirstUsableWins(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:Broken Date
BDAY:not-a-date
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Good Date
BDAY:1988-07-21
END:VCARD`

	birth, err := agegate.BirthDateFromVCard(strings.NewReader(vcardContent))
	require.NoError(t, err)
	assert.Equal(t, 1988, birth.Year())
}

func TestBirthDateFromVCard_EmptyStream(t *testing.T) {
	_, err := agegate.BirthDateFromVCard(strings.NewReader(""))
	assert.ErrorIs(t, err, agegate.ErrNoBirthDate)
}
