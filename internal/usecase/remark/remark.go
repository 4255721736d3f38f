// Package remark parses remarks that follow the node naming rule:
//
//	<country>-<region>-Tier<n>[-sid:<id>][-sn:<n>][-flag:<A-Z>]
//
// country, region and sid are non-empty and hyphen-free. The optional parts
// keep that order and each may be omitted.
package remark

import (
	"regexp"
	"strconv"

	"github.com/aalvaropc/nodesort/internal/domain"
)

var ruleRE = regexp.MustCompile(`^([^-]+)-([^-]+)-Tier(\d+)(?:-sid:([^-]+))?(?:-sn:(\d+))?(?:-flag:([A-Z]))?$`)

const (
	groupCountry = iota + 1
	groupRegion
	groupTier
	groupSID
	groupSN
	groupFlag
)

// Parse matches s against the naming rule. It returns false for unruled remarks.
// Parse does not check cross-field invariants (sn without sid); the classifier does.
func Parse(s string) (domain.ParsedRemark, bool) {
	m := ruleRE.FindStringSubmatchIndex(s)
	if m == nil {
		return domain.ParsedRemark{}, false
	}

	group := func(i int) (string, bool) {
		start, end := m[2*i], m[2*i+1]
		if start < 0 {
			return "", false
		}
		return s[start:end], true
	}

	country, _ := group(groupCountry)
	region, _ := group(groupRegion)
	tierDigits, _ := group(groupTier)

	tier, err := strconv.Atoi(tierDigits)
	if err != nil {
		// out of range
		return domain.ParsedRemark{}, false
	}

	p := domain.ParsedRemark{
		Country: country,
		Region:  region,
		Tier:    tier,
	}

	if sid, ok := group(groupSID); ok {
		p.SID = &sid
	}
	if digits, ok := group(groupSN); ok {
		sn, err := strconv.Atoi(digits)
		if err != nil {
			return domain.ParsedRemark{}, false
		}
		p.SN = &sn
	}
	if flag, ok := group(groupFlag); ok {
		p.Flag = &flag
	}

	return p, true
}
