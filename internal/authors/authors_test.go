package authors

import (
	"reflect"
	"testing"

	"github.com/arXiv/arxiv-feed/internal/domain"
)

func TestParse_SingleAuthor(t *testing.T) {
	got := Parse("John A. Smith")
	want := []domain.Author{{
		LastName: "Smith",
		FullName: "John A. Smith",
		Initials: "J. A.",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParse_CommaSeparated(t *testing.T) {
	got := Parse("John Smith, Jane Doe")
	if len(got) != 2 {
		t.Fatalf("got %d authors, want 2", len(got))
	}
	if got[0].LastName != "Smith" || got[1].LastName != "Doe" {
		t.Errorf("surnames = %q, %q", got[0].LastName, got[1].LastName)
	}
}

func TestParse_FinalAnd(t *testing.T) {
	got := Parse("John Smith, Jane Doe and Bob Roe")
	if len(got) != 3 {
		t.Fatalf("got %d authors, want 3", len(got))
	}
	if got[2].FullName != "Bob Roe" {
		t.Errorf("last author = %q", got[2].FullName)
	}
}

func TestParse_Affiliations(t *testing.T) {
	got := Parse("John Smith (MIT), Jane Doe (Harvard, CERN)")
	if len(got) != 2 {
		t.Fatalf("got %d authors, want 2", len(got))
	}
	if !reflect.DeepEqual(got[0].Affiliations, []string{"MIT"}) {
		t.Errorf("first affiliations = %v", got[0].Affiliations)
	}
	// The comma inside the parens must not split the entry.
	if !reflect.DeepEqual(got[1].Affiliations, []string{"Harvard", "CERN"}) {
		t.Errorf("second affiliations = %v", got[1].Affiliations)
	}
}

func TestParse_MultipleAffiliationGroups(t *testing.T) {
	got := Parse("Jane Doe (Harvard) (CERN)")
	if len(got) != 1 {
		t.Fatalf("got %d authors, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Affiliations, []string{"Harvard", "CERN"}) {
		t.Errorf("affiliations = %v", got[0].Affiliations)
	}
}

func TestParse_UnbalancedParen(t *testing.T) {
	got := Parse("Jane Doe (Harvard, Bob Roe")
	// The open paren swallows the rest as one affiliation group rather
	// than producing a phantom author.
	if len(got) != 1 {
		t.Fatalf("got %d authors, want 1", len(got))
	}
	if got[0].LastName != "Doe" {
		t.Errorf("surname = %q", got[0].LastName)
	}
	if !reflect.DeepEqual(got[0].Affiliations, []string{"Harvard", "Bob Roe"}) {
		t.Errorf("affiliations = %v", got[0].Affiliations)
	}
}

func TestParse_NameSuffix(t *testing.T) {
	got := Parse("Martin Luther King Jr.")
	if len(got) != 1 {
		t.Fatalf("got %d authors, want 1", len(got))
	}
	if got[0].LastName != "King Jr." {
		t.Errorf("surname = %q, want %q", got[0].LastName, "King Jr.")
	}
	if got[0].Initials != "M. L." {
		t.Errorf("initials = %q", got[0].Initials)
	}
}

func TestParse_SkipsEtAl(t *testing.T) {
	got := Parse("John Smith, et al.")
	if len(got) != 1 {
		t.Fatalf("got %d authors, want 1", len(got))
	}
	if got[0].FullName != "John Smith" {
		t.Errorf("author = %q", got[0].FullName)
	}
}

func TestParse_Empty(t *testing.T) {
	if got := Parse(""); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := Parse("  ,  "); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestParse_UnicodeInitials(t *testing.T) {
	got := Parse("Łukasz Kowalski")
	if len(got) != 1 {
		t.Fatalf("got %d authors, want 1", len(got))
	}
	if got[0].Initials != "Ł." {
		t.Errorf("initials = %q, want %q", got[0].Initials, "Ł.")
	}
}

func TestParse_SingleToken(t *testing.T) {
	got := Parse("Collaboration")
	if len(got) != 1 {
		t.Fatalf("got %d authors, want 1", len(got))
	}
	if got[0].LastName != "Collaboration" || got[0].Initials != "" {
		t.Errorf("got %+v", got[0])
	}
}
