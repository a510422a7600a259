package ledger

import (
	"regexp"

	"github.com/chris/check-ledger/pkg/models"
)

var checkNumberPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidCheckNumber reports whether a check number is digits-only.
func ValidCheckNumber(number string) bool {
	return checkNumberPattern.MatchString(number)
}

// ValidateNewCheck enforces the shared creation rules for both ledgers
// before a check is persisted:
//   - check number required, digits only;
//   - amount required, greater than zero;
//   - due date required;
//   - digital checks need an issue date no later than the due date and
//     a contact reference; physical checks need a free-text
//     counterparty name instead and are exempt from the issue-date rule.
//
// Number uniqueness is a store concern, see CheckManager.CreateCheck.
func ValidateNewCheck(check *models.Check) error {
	if check.CheckNumber == "" {
		return Validationf("check number is required")
	}
	if !ValidCheckNumber(check.CheckNumber) {
		return Validationf("check number must contain digits only")
	}
	if !check.Amount.Positive() {
		return Validationf("amount must be greater than 0")
	}
	if check.DueDate.IsZero() {
		return Validationf("due date is required")
	}

	if check.IsPhysical {
		if check.CounterpartyName == "" {
			return Validationf("counterparty name is required for physical checks")
		}
		if check.ContactId != "" {
			return Validationf("physical checks cannot reference a contact")
		}
		return nil
	}

	if check.ContactId == "" {
		return Validationf("contact is required")
	}
	if check.CounterpartyName != "" {
		return Validationf("free-text counterparty is only allowed on physical checks")
	}
	if check.IssueDate.IsZero() {
		return Validationf("issue date is required")
	}
	if check.DueDate.Before(check.IssueDate) {
		return Validationf("due date must not be before the issue date")
	}
	return nil
}
