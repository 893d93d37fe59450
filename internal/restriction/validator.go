package restriction

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/megamart-checkout/internal/domain"
)

// Categories that may only be sold to verified customers aged 18+.
var restrictedCategories = []string{"Alcohol", "Tobacco", "Knives"}

// IsPurchaseRestricted reports whether the customer may not buy the item on
// the given purchase date. Unrestricted items are always allowed. For
// restricted items the customer must be linked to the transaction, have a
// date of birth on file, be identity-verified and have reached the age of
// majority on the purchase date.
func IsPurchaseRestricted(item *domain.Item, customer *domain.Customer, purchaseDate string) (bool, error) {
	if item == nil {
		return false, fmt.Errorf("%w: item is required", domain.ErrRestrictedItem)
	}
	if !hasRestrictedCategory(item.Categories) {
		return false, nil
	}
	if customer == nil || customer.DateOfBirth == nil || purchaseDate == "" {
		return true, nil
	}
	dob, err := domain.ParseDate(*customer.DateOfBirth)
	if err != nil {
		return false, fmt.Errorf("%w: invalid date of birth %q", domain.ErrRestrictedItem, *customer.DateOfBirth)
	}
	purchased, err := domain.ParseDate(purchaseDate)
	if err != nil {
		return false, fmt.Errorf("%w: invalid purchase date %q", domain.ErrRestrictedItem, purchaseDate)
	}
	if !customer.IDVerified || majorityDate(dob).After(purchased) {
		return true, nil
	}
	return false, nil
}

func hasRestrictedCategory(categories []string) bool {
	for _, c := range categories {
		for _, r := range restrictedCategories {
			if strings.EqualFold(c, r) {
				return true
			}
		}
	}
	return false
}

// majorityDate returns the first date the customer counts as 18+. A Feb-29
// birth date lands on an invalid calendar date 18 years on; time.Date
// normalises it to 1 March, which is the clamped date plus one day and
// implements the 18-years-and-one-day rule for leap-day births.
func majorityDate(dob time.Time) time.Time {
	return time.Date(dob.Year()+18, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
}
