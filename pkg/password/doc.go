// Package password generates random passwords from character-class
// policies and scores the strength of arbitrary passwords.
//
// Generation reads from crypto/rand. Analysis is deterministic and never
// fails: every input, including the empty string, yields a Report.
package password
