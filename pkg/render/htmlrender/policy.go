package htmlrender

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     *bluemonday.Policy
)

// DefaultPolicy returns the shared sanitiser: bluemonday's UGC policy extended
// with the form controls and attributes the components emit.
func DefaultPolicy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("form", "fieldset", "legend", "label", "input", "select", "option", "textarea", "button")
		policy.AllowAttrs("class", "id", "role").Globally()
		policy.AllowAttrs("aria-label", "aria-describedby", "aria-invalid", "aria-required").Globally()
		policy.AllowDataAttributes()
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs(
			"type", "name", "value", "checked", "disabled", "readonly",
			"placeholder", "required", "tabindex", "multiple", "rows", "cols",
			"min", "max", "step", "maxlength", "pattern", "selected",
		).OnElements("input", "select", "option", "textarea", "button")
		policy.AllowAttrs("action", "method", "enctype").OnElements("form")
		defaultPolicy = policy
	})
	return defaultPolicy
}
