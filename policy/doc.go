// Package policy configures how outgoing SMS text is prepared.
//
// A Policy bundles the sanitizing and truncation settings a sender applies to
// every message. Policies come from code, environment variables or a YAML,
// TOML or JSON file:
//
//	p := policy.FromEnv() // SMSKIT_MAX_SEGMENTS=2 SMSKIT_SANITIZE=true
//
//	p, err := policy.Load("sms.yaml")
//
// A file looks like:
//
//	max_segments: 2
//	word_boundary: true
//	suffix: "..."
//	sanitize: true
//	replacement: "?"
//
// # Applying
//
//	out, err := p.Apply(text)
//	// out.Text is ready to send; out.Result.Messages <= p.MaxSegments
//	// out.DataCoding is the SMPP data_coding to submit it with
//
// ApplyTemplate renders a message template first:
//
//	out, err := p.ApplyTemplate("Hi {{name}}", map[string]any{"name": "Zoë"})
//
// # Reloading
//
// Watch reloads a policy file when it changes:
//
//	go policy.Watch(ctx, "sms.yaml", func(p policy.Policy) { current.Store(&p) }, logger)
//
// Schema returns the JSON schema of the file format for editor tooling.
package policy
