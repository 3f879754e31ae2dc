// Package event defines the single entity managed by eventboard.
//
// An Event is a plain record with five string fields. Upcoming and past are
// derived at query time by comparing the zero-padded ISO date string against
// today's date; nothing about classification is stored.
//
// Drafts carry user-entered values before an id is assigned. All four draft
// fields are required after trimming; the same rule applies to creation and
// editing.
package event
