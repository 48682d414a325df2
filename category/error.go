package category

import (
	"fmt"
	"strings"

	sErrors "github.com/johnstarich/spendee-sankey/errors"
	"github.com/pkg/errors"
)

// AmbiguousCategoryError is returned when a raw category is listed in more than one group
type AmbiguousCategoryError struct {
	Category string
	Groups   []string
}

func (e *AmbiguousCategoryError) Error() string {
	return fmt.Sprintf("Category %q is listed in multiple groups: %s", e.Category, strings.Join(e.Groups, ", "))
}

// IsAmbiguous returns true if err contains at least one AmbiguousCategoryError
func IsAmbiguous(err error) bool {
	switch err := errors.Cause(err).(type) {
	case *AmbiguousCategoryError:
		return true
	case sErrors.Errors:
		for _, e := range err {
			if IsAmbiguous(e) {
				return true
			}
		}
	}
	return false
}
