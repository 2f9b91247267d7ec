package content

import "github.com/blvshy/doodleart-backend/pkg/enums"

// FAQEntry is one question/answer pair for the FAQ section.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TeamMember describes one person on the about page.
type TeamMember struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Alias       string   `json:"alias"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Skills      []string `json:"skills"`
}

// CompanyValue is one of the values highlighted on the about page.
type CompanyValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PaymentMethodInfo describes an accepted payment method.
type PaymentMethodInfo struct {
	ID          enums.PaymentMethod `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
}

// Service exposes the site's static informational sections.
type Service interface {
	FAQ() []FAQEntry
	Team() []TeamMember
	Values() []CompanyValue
	PaymentMethods() []PaymentMethodInfo
}

type service struct{}

// NewService returns the fixed content provider.
func NewService() Service {
	return service{}
}

func (service) FAQ() []FAQEntry { return faqEntries }

func (service) Team() []TeamMember { return teamMembers }

func (service) Values() []CompanyValue { return companyValues }

func (service) PaymentMethods() []PaymentMethodInfo { return paymentMethods }
