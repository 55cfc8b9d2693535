// pkg/internal/tagger/config.go
package tagger

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joeydtaylor/wiremarker/pkg/internal/types"
	"github.com/joeydtaylor/wiremarker/pkg/internal/utils"
)

// ValidateConfig checks the static templates before any record is processed.
// Templates containing placeholders are only fully checked per invocation, once
// resolved against a record.
func ValidateConfig(c types.TaggerConfig) error {
	if strings.TrimSpace(c.Bucket) == "" {
		return fmt.Errorf("tagger: bucket is required")
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("tagger: key is required")
	}
	if strings.TrimSpace(c.TagKey) == "" {
		return fmt.Errorf("tagger: tag key is required")
	}
	if strings.TrimSpace(c.TagValue) == "" {
		return fmt.Errorf("tagger: tag value is required")
	}
	return nil
}

// resolvedParameters are the per-invocation operation parameters after
// attribute interpolation.
type resolvedParameters struct {
	bucket    string
	key       string
	versionID string
	tagKey    string
	tagValue  string
}

func (t *Tagger) resolveParameters(rec types.Record) (resolvedParameters, error) {
	lookup := func(name string) (string, bool) {
		return rec.Attribute(name)
	}

	p := resolvedParameters{
		bucket:    utils.InterpolateAttributes(t.config.Bucket, lookup),
		key:       utils.InterpolateAttributes(t.config.Key, lookup),
		versionID: strings.TrimSpace(utils.InterpolateAttributes(t.config.VersionID, lookup)),
		tagKey:    utils.InterpolateAttributes(t.config.TagKey, lookup),
		tagValue:  utils.InterpolateAttributes(t.config.TagValue, lookup),
	}

	if p.bucket == "" {
		return p, fmt.Errorf("tagger: resolved bucket is empty")
	}
	if p.key == "" {
		return p, fmt.Errorf("tagger: resolved key is empty")
	}
	// Limits count characters, not bytes; a multi-byte key within the
	// character limit is valid.
	if n := utf8.RuneCountInString(p.tagKey); n < 1 || n > types.MaxTagKeyLength {
		return p, fmt.Errorf("tagger: resolved tag key length %d outside 1..%d", n, types.MaxTagKeyLength)
	}
	if n := utf8.RuneCountInString(p.tagValue); n < 1 || n > types.MaxTagValueLength {
		return p, fmt.Errorf("tagger: resolved tag value length %d outside 1..%d", n, types.MaxTagValueLength)
	}

	return p, nil
}
