package dataset

import (
	"errors"
	"sort"
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type DatasetSuite struct {
	ds *Dataset
}

var _ = Suite(&DatasetSuite{})

func (s *DatasetSuite) SetUpSuite(c *C) {
	var err error
	s.ds, err = New()
	c.Assert(err, IsNil)
	c.Assert(s.ds, NotNil)
}

func (s *DatasetSuite) TestListMatches(c *C) {
	matches := s.ds.ListMatches()
	c.Assert(matches, HasLen, 21)
	c.Assert(matches[0].Year, Equals, 1930)
	c.Assert(matches[20].Year, Equals, 2018)

	for i := 1; i < len(matches); i++ {
		c.Assert(matches[i].Year > matches[i-1].Year, Equals, true)
	}
}

func (s *DatasetSuite) TestListMatchesReturnsCopy(c *C) {
	matches := s.ds.ListMatches()
	matches[0].Winner = "Nowhere"

	again := s.ds.ListMatches()
	c.Assert(again[0].Winner, Equals, "Uruguay")
}

func (s *DatasetSuite) TestFindMatch(c *C) {
	m, ok := s.ds.FindMatch(2018)
	c.Assert(ok, Equals, true)
	c.Assert(m.Winner, Equals, "France")
	c.Assert(m.RunnerUp, Equals, "Croatia")

	m, ok = s.ds.FindMatch(1930)
	c.Assert(ok, Equals, true)
	c.Assert(m.Winner, Equals, "Uruguay")
	c.Assert(m.RunnerUp, Equals, "Argentina")

	_, ok = s.ds.FindMatch(1925)
	c.Assert(ok, Equals, false)

	// 1942 and 1946 were not played
	_, ok = s.ds.FindMatch(1942)
	c.Assert(ok, Equals, false)
}

func (s *DatasetSuite) TestYears(c *C) {
	years := s.ds.Years()
	c.Assert(years, HasLen, 21)
	c.Assert(years[3], Equals, 1950)
}

func (s *DatasetSuite) TestReferenceCountries(c *C) {
	countries := s.ds.ReferenceCountries()
	c.Assert(len(countries), Equals, 249)

	for _, name := range []string{"Brazil", "Germany", "Italy", "Canada", "United Kingdom", "Croatia"} {
		_, ok := countries[name]
		c.Assert(ok, Equals, true, Commentf("missing %s", name))
	}
	for _, name := range []string{"England", "West Germany", "Czechoslovakia"} {
		c.Assert(s.ds.IsCountry(name), Equals, false, Commentf("%s is not a current country", name))
	}
}

func (s *DatasetSuite) TestSortedCountries(c *C) {
	sorted := s.ds.SortedCountries()
	c.Assert(sorted, HasLen, 249)
	c.Assert(sort.StringsAreSorted(sorted), Equals, true)
	c.Assert(sorted[0], Equals, "Afghanistan")
}

func (s *DatasetSuite) TestBuildRejectsMismatchedColumns(c *C) {
	_, err := Build([]int{1930, 1934}, []string{"Uruguay"}, []string{"Argentina"}, []string{"Uruguay"})
	c.Assert(err, NotNil)
	c.Assert(errors.Is(err, ErrMalformed), Equals, true)
}

func (s *DatasetSuite) TestBuildRejectsDuplicateYear(c *C) {
	_, err := Build(
		[]int{1930, 1930},
		[]string{"Uruguay", "Italy"},
		[]string{"Argentina", "Hungary"},
		[]string{"Uruguay"},
	)
	c.Assert(err, ErrorMatches, ".*duplicate year 1930.*")
}

func (s *DatasetSuite) TestBuildRejectsBadRows(c *C) {
	cases := []struct {
		year      int
		winner    string
		runnerUp  string
		errSubstr string
	}{
		{1930, "", "Argentina", ".*missing winner.*"},
		{1930, "Uruguay", " ", ".*missing runner-up.*"},
		{1925, "Uruguay", "Argentina", ".*below minimum.*"},
		{1930, "Uruguay", "Uruguay", ".*both winner and runner-up.*"},
	}
	for _, tc := range cases {
		_, err := Build([]int{tc.year}, []string{tc.winner}, []string{tc.runnerUp}, []string{"Uruguay"})
		c.Assert(err, ErrorMatches, tc.errSubstr)
	}
}

func (s *DatasetSuite) TestBuildRejectsEmptyCountries(c *C) {
	_, err := Build([]int{1930}, []string{"Uruguay"}, []string{"Argentina"}, nil)
	c.Assert(errors.Is(err, ErrMalformed), Equals, true)
}

func (s *DatasetSuite) TestParseCountries(c *C) {
	names, err := parseCountries([]byte("# header\n\nBrazil\n  Italy  \n"))
	c.Assert(err, IsNil)
	c.Assert(names, DeepEquals, []string{"Brazil", "Italy"})

	_, err = parseCountries([]byte("Brazil\nBrazil\n"))
	c.Assert(err, ErrorMatches, ".*duplicate country.*line 2.*")
}
