// Package analytics derives streaks, completion rates, weekly activity,
// calendar heatmaps and mood trends from snapshots of habits and notes.
//
// Every function is pure: "today" is passed in as a YYYY-MM-DD string, inputs
// are never mutated and empty or inconsistent input degrades to zero values
// instead of errors.
package analytics
