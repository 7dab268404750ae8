package specerrors

import (
	"errors"
	"testing"
)

func TestInvalidSpecError(t *testing.T) {
	t.Run("Error message with no issues", func(t *testing.T) {
		err := &InvalidSpecError{}
		if err.Error() != "invalid spec" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with one issue", func(t *testing.T) {
		err := &InvalidSpecError{
			Issues: []Issue{{Path: "paths", Message: "must be an object"}},
		}
		if err.Error() != "invalid spec: paths: must be an object" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with multiple issues", func(t *testing.T) {
		err := &InvalidSpecError{
			Issues: []Issue{
				{Path: "paths", Message: "must be an object"},
				{Path: "info", Message: "missing"},
			},
		}
		if err.Error() != "invalid spec: 2 issues, first: paths: must be an object" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with cause", func(t *testing.T) {
		err := &InvalidSpecError{Cause: errors.New("boom")}
		if err.Error() != "invalid spec: boom" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrInvalidSpec", func(t *testing.T) {
		err := &InvalidSpecError{}
		if !errors.Is(err, ErrInvalidSpec) {
			t.Error("InvalidSpecError should match ErrInvalidSpec")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &InvalidSpecError{}
		if errors.Is(err, ErrUnsupportedVersion) {
			t.Error("InvalidSpecError should not match ErrUnsupportedVersion")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &InvalidSpecError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("OnlyReferenceIssues true when all issues are refs", func(t *testing.T) {
		err := &InvalidSpecError{
			Issues: []Issue{
				{Path: "paths./pets.get", Message: "unresolved reference", Ref: "#/components/schemas/Pet"},
				{Path: "paths./pets.post", Message: "unresolved reference", Ref: "#/components/schemas/NewPet"},
			},
		}
		if !err.OnlyReferenceIssues() {
			t.Error("expected OnlyReferenceIssues to be true")
		}
	})

	t.Run("OnlyReferenceIssues false with mixed issues", func(t *testing.T) {
		err := &InvalidSpecError{
			Issues: []Issue{
				{Path: "paths./pets.get", Message: "unresolved reference", Ref: "#/components/schemas/Pet"},
				{Path: "paths", Message: "must be an object"},
			},
		}
		if err.OnlyReferenceIssues() {
			t.Error("expected OnlyReferenceIssues to be false")
		}
	})

	t.Run("OnlyReferenceIssues false with no issues", func(t *testing.T) {
		err := &InvalidSpecError{}
		if err.OnlyReferenceIssues() {
			t.Error("expected OnlyReferenceIssues to be false for empty issue list")
		}
	})

	t.Run("Details lists every issue", func(t *testing.T) {
		err := &InvalidSpecError{
			Issues: []Issue{
				{Path: "a", Message: "first"},
				{Message: "second"},
			},
		}
		details := err.Details()
		if len(details) != 2 || details[0] != "a: first" || details[1] != "second" {
			t.Errorf("unexpected details: %v", details)
		}
	})
}

func TestUnsupportedVersionError(t *testing.T) {
	t.Run("Error message without marker", func(t *testing.T) {
		err := &UnsupportedVersionError{}
		want := "unsupported version: no openapi or swagger version marker found"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with marker", func(t *testing.T) {
		err := &UnsupportedVersionError{Marker: "1.2"}
		if err.Error() != `unsupported version: "1.2"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedVersion", func(t *testing.T) {
		err := &UnsupportedVersionError{Marker: "1.2"}
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Error("UnsupportedVersionError should match ErrUnsupportedVersion")
		}
	})
}

func TestExtractionError(t *testing.T) {
	t.Run("Error message with message and cause", func(t *testing.T) {
		err := &ExtractionError{Message: "panic during extraction", Cause: errors.New("nil map")}
		if err.Error() != "extraction error: panic during extraction: nil map" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrExtraction", func(t *testing.T) {
		err := &ExtractionError{Message: "test"}
		if !errors.Is(err, ErrExtraction) {
			t.Error("ExtractionError should match ErrExtraction")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ExtractionError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message with ref", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/definitions/Pet", Message: "target not found"}
		if err.Error() != "reference error: #/definitions/Pet: target not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrReference", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/definitions/Pet"}
		if !errors.Is(err, ErrReference) {
			t.Error("ReferenceError should match ErrReference")
		}
	})
}

func TestIssue(t *testing.T) {
	t.Run("IsReference", func(t *testing.T) {
		if (Issue{Message: "bad"}).IsReference() {
			t.Error("issue without ref should not be a reference issue")
		}
		if !(Issue{Message: "bad", Ref: "#/x"}).IsReference() {
			t.Error("issue with ref should be a reference issue")
		}
	})

	t.Run("String without path", func(t *testing.T) {
		if got := (Issue{Message: "bad"}).String(); got != "bad" {
			t.Errorf("unexpected string: %s", got)
		}
	})
}
