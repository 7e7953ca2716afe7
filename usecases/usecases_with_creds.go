package usecases

import (
	"github.com/meridiancruises/compliance-backend/models"
	"github.com/meridiancruises/compliance-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceCaseSecurity() security.EnforceSecurityCase {
	return &security.EnforceSecurityCaseImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforcePatronSecurity() security.EnforceSecurityPatron {
	return &security.EnforceSecurityPatronImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceTeamSecurity() security.EnforceSecurityTeam {
	return &security.EnforceSecurityTeamImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseWorkflowUsecase() CaseWorkflowUsecase {
	fileUsecase := usecases.NewCaseFileUsecase()
	return CaseWorkflowUsecase{
		enforceSecurity:    usecases.NewEnforceCaseSecurity(),
		transactionFactory: usecases.NewTransactionFactory(),
		executorFactory:    usecases.NewExecutorFactory(),
		repository:         usecases.Repositories.ComplianceDbRepository,
		fileArchiver:       &fileUsecase,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseQueryUsecase() CaseQueryUsecase {
	return CaseQueryUsecase{
		enforceSecurity: usecases.NewEnforceCaseSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.ComplianceDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewCaseFileUsecase() CaseFileUsecase {
	return CaseFileUsecase{
		enforceSecurity:      usecases.NewEnforceCaseSecurity(),
		transactionFactory:   usecases.NewTransactionFactory(),
		executorFactory:      usecases.NewExecutorFactory(),
		repository:           usecases.Repositories.ComplianceDbRepository,
		blobRepository:       usecases.Repositories.BlobRepository,
		caseFilesBucketUrl:   usecases.caseFilesBucketUrl,
		patronFilesBucketUrl: usecases.patronFilesBucketUrl,
		credentials:          usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewPatronUsecase() PatronUsecase {
	return PatronUsecase{
		enforceSecurity:      usecases.NewEnforcePatronSecurity(),
		transactionFactory:   usecases.NewTransactionFactory(),
		executorFactory:      usecases.NewExecutorFactory(),
		repository:           usecases.Repositories.ComplianceDbRepository,
		blobRepository:       usecases.Repositories.BlobRepository,
		patronFilesBucketUrl: usecases.patronFilesBucketUrl,
		credentials:          usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewTeamUsecase() TeamUsecase {
	return TeamUsecase{
		enforceSecurity:    usecases.NewEnforceTeamSecurity(),
		transactionFactory: usecases.NewTransactionFactory(),
		executorFactory:    usecases.NewExecutorFactory(),
		repository:         usecases.Repositories.ComplianceDbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		rosterListener:     usecases.Repositories.RosterListener,
		avatarsBucketUrl:   usecases.avatarsBucketUrl,
		credentials:        usecases.Credentials,
	}
}
