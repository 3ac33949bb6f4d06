package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("admin@profkom.lviv.ua"))
	assert.True(t, ValidEmail("  first.last+tag@example.com  "))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail(""))
}

func TestValidName(t *testing.T) {
	t.Run("latin and cyrillic names pass", func(t *testing.T) {
		assert.True(t, ValidName("Oksana Kovalenko"))
		assert.True(t, ValidName("Оксана Коваленко"))
		assert.True(t, ValidName("O'Brien-Smith"))
	})

	t.Run("digits and symbols fail", func(t *testing.T) {
		assert.False(t, ValidName("Oksana123"))
		assert.False(t, ValidName("Name!"))
	})

	t.Run("length bounds", func(t *testing.T) {
		assert.False(t, ValidName("A"))
		long := make([]rune, NameMaxLength+1)
		for i := range long {
			long[i] = 'a'
		}
		assert.False(t, ValidName(string(long)))
	})
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Oksana Kovalenko", CleanName("Oksana123 Kovalenko!"))
	assert.Equal(t, "Оксана", CleanName("Оксана_"))
	assert.Equal(t, "O'Brien-Smith", CleanName("O'Brien-Smith"))
	assert.Equal(t, "", CleanName("123!@#"))
}
