package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentPolicy_TokenExactMatch(t *testing.T) {
	t.Parallel()

	policy := NewContentPolicy(DefaultForbiddenWords)

	t.Run("exact token is rejected", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Пушкин", policy.Check("Мой любимый поэт Пушкин безусловно"))
	})

	t.Run("case variants are rejected", func(t *testing.T) {
		t.Parallel()
		assert.NotEmpty(t, policy.Check("пушкин"))
		assert.NotEmpty(t, policy.Check("ПУШКИН"))
		assert.NotEmpty(t, policy.Check("лермонтов тоже"))
	})

	t.Run("embedded substring passes", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, policy.Check("я Пушкинист со стажем"))
		assert.Empty(t, policy.Check("антилермонтовский текст"))
	})

	t.Run("clean text passes", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, policy.Check("просто хороший комментарий"))
	})

	t.Run("splits on any whitespace", func(t *testing.T) {
		t.Parallel()
		assert.NotEmpty(t, policy.Check("первая строка\nПушкин\tвторая"))
	})
}

func TestContentPolicy_Configurable(t *testing.T) {
	t.Parallel()

	policy := NewContentPolicy([]string{"spoiler"})
	assert.NotEmpty(t, policy.Check("huge SPOILER ahead"))
	assert.Empty(t, policy.Check("Пушкин is fine under this policy"))
}

func TestContentPolicy_EmptyList(t *testing.T) {
	t.Parallel()

	policy := NewContentPolicy(nil)
	assert.Empty(t, policy.Check("Пушкин"))
	assert.Equal(t, 0, policy.Size())
}

func TestLoadDenylist(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content_policy.yml")
	content := "forbidden_words:\n  - Пушкин\n  - spoiler\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	words, err := LoadDenylist(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Пушкин", "spoiler"}, words)

	_, err = LoadDenylist(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
