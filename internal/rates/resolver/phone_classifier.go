package resolver

import "github.com/nyaruka/phonenumbers"

// PhoneClassifier derives the calling code from a number's international
// form via libphonenumber metadata.
type PhoneClassifier struct{}

func NewPhoneClassifier() Classifier {
	return PhoneClassifier{}
}

func (PhoneClassifier) Classify(number string) (int, bool) {
	if number == "" {
		return 0, false
	}
	parsed, err := phonenumbers.Parse("+"+number, "")
	if err != nil {
		return 0, false
	}
	code := int(parsed.GetCountryCode())
	if code == 0 {
		return 0, false
	}
	return code, true
}
