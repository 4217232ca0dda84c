// Package logfield builds zap fields for option and result containers so they
// can be logged as structured objects instead of their String form.
//
// An Option is encoded as {"variant": "Som", "value": v} or {"variant": "Non"};
// a Result as {"variant": "Ok", "value": v} or {"variant": "Err", "error": e}.
package logfield
