package usecase

// Input DTOs deliberately carry no id, status or timestamp fields: anything
// system-assigned that a caller sends alongside these is dropped during JSON
// decoding and can never reach storage.

type SubmitDemoRequestInput struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	PracticeName         string `json:"practiceName"`
	PracticeSize         string `json:"practiceSize"`
	CurrentSoftware      string `json:"currentSoftware"`
	PrimaryChallenge     string `json:"primaryChallenge"`
	PreferredContactTime string `json:"preferredContactTime"`
	Message              string `json:"message"`
}

type SubscribeNewsletterInput struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

type UnsubscribeNewsletterInput struct {
	Email string `json:"email"`
}

type UpsertUserInput struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type CreateDentistInput struct {
	PracticeName  string `json:"practiceName"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
}
