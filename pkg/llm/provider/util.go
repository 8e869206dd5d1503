package provider

import (
	"fmt"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
)

// uniqueNonEmpty drops blank answers and duplicates.
func uniqueNonEmpty(messages []string, name string) ([]string, error) {
	messages = slice.Filter(messages, func(_ int, s string) bool {
		return strutil.IsNotBlank(s)
	})

	messages = slice.Unique(messages)

	if len(messages) == 0 {
		return nil, fmt.Errorf("no valid completion content received from %s", name)
	}

	return messages, nil
}

func headerValues(m map[string]string) map[string][]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = []string{v}
	}
	return out
}
