package cargo

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Render serializes cfg to TOML. Keys follow struct declaration order, so
// identical configs always render to identical bytes.
func Render(cfg *BuildConfig) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// MustRender renders cfg and checks the result against the config schema.
// BuildConfig has a fixed shape, so a failure here is a programming error
// and panics.
func MustRender(cfg *BuildConfig) []byte {
	data, err := Render(cfg)
	if err != nil {
		panic(fmt.Sprintf("cannot render cargo config: %v", err))
	}

	result, err := Validate(data)
	if err != nil {
		panic(fmt.Sprintf("cannot validate cargo config: %v", err))
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		panic("rendered cargo config violates schema: " + strings.Join(msgs, "; "))
	}

	return data
}
