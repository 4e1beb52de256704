package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials_BothNamesPresent(t *testing.T) {
	assert.Equal(t, "AL", Initials("ada", "lovelace", "ada@example.com"))
	assert.Equal(t, "AL", Initials("Ada", "Lovelace", ""))
	// Email heuristics must not apply once both names exist.
	assert.Equal(t, "AL", Initials("Ada", "Lovelace", "zz.yy@example.com"))
}

func TestInitials_FirstNameOnly_MinesEmailSecondInitial(t *testing.T) {
	// Local-part with exactly two dot segments contributes the second initial.
	assert.Equal(t, "AK", Initials("Ada", "", "a.king@example.com"))
	// Any other segment count falls back to the single first initial.
	assert.Equal(t, "A", Initials("Ada", "", "ada@example.com"))
	assert.Equal(t, "A", Initials("Ada", "", "a.b.c@example.com"))
	assert.Equal(t, "A", Initials("Ada", "", ""))
}

func TestInitials_EmailOnly_DottedLocalPart(t *testing.T) {
	assert.Equal(t, "AL", Initials("", "", "ada.lovelace@example.com"))
	assert.Equal(t, "AL", Initials("", "", "ada.lovelace.king@example.com"))
}

func TestInitials_EmailOnly_UndottedLocalPartSplitsInHalf(t *testing.T) {
	// "adalove" splits as "ada"/"love": first letter of each half.
	assert.Equal(t, "AL", Initials("", "", "adalove@example.com"))
	assert.Equal(t, "A", Initials("", "", "a@example.com"))
}

func TestInitials_NothingAvailableIsEmptyNotPanic(t *testing.T) {
	assert.Equal(t, "", Initials("", "", ""))
	// Last name alone has no defined fallback source.
	assert.Equal(t, "", Initials("", "Lovelace", ""))
}

func TestInitials_AlwaysUppercase(t *testing.T) {
	assert.Equal(t, "AL", Initials("", "", "ada.lovelace@example.com"))
	assert.Equal(t, "ÅL", Initials("åsa", "lind", ""))
}
