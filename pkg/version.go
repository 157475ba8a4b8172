package bumpytrack

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Part names the version component to increment.
type Part string

const (
	PartMajor Part = "major"
	PartMinor Part = "minor"
	PartTiny  Part = "tiny"
)

// Version is a major.minor.patch triple of non-negative integers.
// Values are never mutated; Increment returns a new Version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a strict "major.minor.patch" string. Each component must be
// a base-10 integer without sign or leading zeros, so that
// ParseVersion(s).String() == s holds for every accepted s.
func ParseVersion(text string) (Version, error) {
	tokens := strings.Split(text, ".")
	if len(tokens) != 3 {
		return Version{}, fmt.Errorf("%w: %q should have exactly 3 tokens", ErrInvalidVersionFormat, text)
	}

	var nums [3]int
	for i, token := range tokens {
		n, err := parseComponent(token)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersionFormat, text, err)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func parseComponent(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("empty component")
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("component %q is not a non-negative integer", token)
		}
	}
	if len(token) > 1 && token[0] == '0' {
		return 0, fmt.Errorf("component %q has a leading zero", token)
	}
	return strconv.Atoi(token)
}

// String formats the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Increment returns the version with the given part bumped and every lower
// part reset to zero.
func (v Version) Increment(part Part) (Version, error) {
	switch part {
	case PartMajor:
		return Version{Major: v.Major + 1}, nil
	case PartMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case PartTiny:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("%w, got %q", ErrInvalidPart, part)
	}
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or after other.
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+v.String(), "v"+other.String())
}
