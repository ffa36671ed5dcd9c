package models

// JSON is a free-form document. Gateway response bodies keep this type end
// to end so unrecognized fields survive a round trip untouched.
type JSON map[string]interface{}
