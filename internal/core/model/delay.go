package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// DelayPattern is the accepted form of a delay field: 1..999999 without a leading zero.
const DelayPattern = `^[1-9][0-9]{0,5}$`

var delayRegexp = regexp.MustCompile(DelayPattern)

// DelayParameters are the per-character typing delays in milliseconds.
type DelayParameters struct {
	Base   int `yaml:"base" json:"base"`
	Jitter int `yaml:"jitter" json:"jitter"`
}

// DefaultDelayParameters returns the values shown before the user edits anything.
func DefaultDelayParameters() DelayParameters {
	return DelayParameters{Base: 10, Jitter: 5}
}

// ValidDelay reports whether text is an acceptable delay value.
func ValidDelay(text string) bool {
	return delayRegexp.MatchString(text)
}

// CommitDelay returns the value that should be committed when a field loses focus.
// Invalid text leaves the previous committed value in place.
func CommitDelay(current, lastValid string) string {
	if ValidDelay(current) {
		return current
	}
	return lastValid
}

// ParseDelayParameters converts two committed field values.
func ParseDelayParameters(base, jitter string) (DelayParameters, error) {
	baseValue, err := parseDelay(base)
	if err != nil {
		return DelayParameters{}, fmt.Errorf("parse base delay: %w", err)
	}
	jitterValue, err := parseDelay(jitter)
	if err != nil {
		return DelayParameters{}, fmt.Errorf("parse jitter: %w", err)
	}
	return DelayParameters{Base: baseValue, Jitter: jitterValue}, nil
}

// Valid reports whether both values are inside 1..999999.
func (params DelayParameters) Valid() bool {
	return inDelayRange(params.Base) && inDelayRange(params.Jitter)
}

// Texts returns the field representation of both values.
func (params DelayParameters) Texts() (string, string) {
	return strconv.Itoa(params.Base), strconv.Itoa(params.Jitter)
}

func parseDelay(text string) (int, error) {
	if !ValidDelay(text) {
		return 0, fmt.Errorf("invalid delay %q", text)
	}
	return strconv.Atoi(text)
}

func inDelayRange(value int) bool {
	return value >= 1 && value <= 999999
}
