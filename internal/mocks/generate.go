package mocks

//go:generate mockery --name DataReader --srcpkg github.com/ventus-lab/ventus/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name CredentialStore --srcpkg github.com/ventus-lab/ventus/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name AggregateStore --srcpkg github.com/ventus-lab/ventus/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
