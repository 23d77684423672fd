// Package query interprets launcher input against a scanned skill list.
//
// Input without a leading "/" is a search over skill names. "/name" picks a
// skill directly and "/name some task" picks it with a task appended to the
// invocation.
package query
