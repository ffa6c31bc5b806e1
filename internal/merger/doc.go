// Package merger splices a generated node list into a sing-box template.
//
// The merge is a pure transform over decoded JSON values. Node entries are
// appended to the template's top-level "outbounds" array, and the tags of
// those entries are appended to the "outbounds" list of every selector group
// named in the configured selector set. Everything else in the template is
// left untouched.
package merger
