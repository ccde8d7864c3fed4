// Package advisor provides the shopping assistants: an intent-based search agent
// and a per-product purchase advisor. Requests go to a configured recommendation
// backend when one is available and fall back to a deterministic local engine
// when it is not, so callers always receive an answer.
package advisor
