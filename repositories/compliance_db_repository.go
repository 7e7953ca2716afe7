package repositories

// ComplianceDbRepository groups every query against the compliance database.
// Methods are spread over the *_repository.go files of this package.
type ComplianceDbRepository struct{}

func NewComplianceDbRepository() *ComplianceDbRepository {
	return &ComplianceDbRepository{}
}
