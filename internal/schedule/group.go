package schedule

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const groupPrefix = "GPV"

var groupIDRegexp = regexp.MustCompile(`^GPV(\d+)\.(\d+)$`) //nolint:gochecknoglobals // compiled once

// GroupID identifies a feeder group, e.g. GPV4.2.
type GroupID string

func ParseGroupID(v string) (GroupID, error) {
	if !groupIDRegexp.MatchString(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGroupID, v)
	}
	return GroupID(v), nil
}

// GroupIDFromNumber builds an ID from the "<major>.<minor>" form used in posts.
func GroupIDFromNumber(number string) (GroupID, error) {
	return ParseGroupID(groupPrefix + strings.TrimSpace(number))
}

// Number returns the "<major>.<minor>" part of the ID.
func (g GroupID) Number() string {
	return strings.TrimPrefix(string(g), groupPrefix)
}

func (g GroupID) String() string {
	return string(g)
}

func (g GroupID) parts() (int, int) {
	m := groupIDRegexp.FindStringSubmatch(string(g))
	if m == nil {
		return 0, 0
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	return major, minor
}

// Compare orders groups by major then minor number, so GPV2.1 sorts before GPV10.1.
func (g GroupID) Compare(other GroupID) int {
	gMajor, gMinor := g.parts()
	oMajor, oMinor := other.parts()
	if gMajor != oMajor {
		return gMajor - oMajor
	}
	if gMinor != oMinor {
		return gMinor - oMinor
	}
	return strings.Compare(string(g), string(other))
}

func SortGroups(groups []GroupID) {
	slices.SortFunc(groups, GroupID.Compare)
}
