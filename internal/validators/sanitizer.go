// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a [Sanitizer] built on bluemonday's strict policy.
// Output is plain text: entities escaped by the policy are decoded again
// since the text ends up in JSON and in a terminal, never in HTML.
func NewSanitizer() Sanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *strictSanitizer) Text(str string) string {
	if str == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(str)))
}
