package http

import (
	customerUsecases "github.com/reqtrack/reqtrack/internal/application/customer/usecases"
	identityUsecases "github.com/reqtrack/reqtrack/internal/application/identity/usecases"
	requestUsecases "github.com/reqtrack/reqtrack/internal/application/request/usecases"
	tagUsecases "github.com/reqtrack/reqtrack/internal/application/tag/usecases"
	uploadUsecases "github.com/reqtrack/reqtrack/internal/application/upload/usecases"
)

type allUseCases struct {
	// identity
	registerUser *identityUsecases.RegisterUserUseCase
	login        *identityUsecases.LoginUseCase
	getProfile   *identityUsecases.GetProfileUseCase
	listUsers    *identityUsecases.ListUsersUseCase

	// customers
	createCustomer  *customerUsecases.CreateCustomerUseCase
	updateCustomer  *customerUsecases.UpdateCustomerUseCase
	deleteCustomer  *customerUsecases.DeleteCustomerUseCase
	getCustomer     *customerUsecases.GetCustomerUseCase
	listCustomers   *customerUsecases.ListCustomersUseCase
	searchCustomers *customerUsecases.SearchCustomersUseCase

	// tags
	createTag          *tagUsecases.CreateTagUseCase
	updateTag          *tagUsecases.UpdateTagUseCase
	deleteTag          *tagUsecases.DeleteTagUseCase
	getTag             *tagUsecases.GetTagUseCase
	listTags           *tagUsecases.ListTagsUseCase
	listTagsByCategory *tagUsecases.ListTagsByCategoryUseCase
	tagStats           *tagUsecases.TagStatsUseCase

	// requests
	createRequest *requestUsecases.CreateRequestUseCase
	listRequests  *requestUsecases.ListRequestsUseCase
	getRequest    *requestUsecases.GetRequestUseCase
	updateRequest *requestUsecases.UpdateRequestUseCase
	deleteRequest *requestUsecases.DeleteRequestUseCase
	addComment    *requestUsecases.AddCommentUseCase
	findSimilar   *requestUsecases.FindSimilarUseCase
	requestStats  *requestUsecases.RequestStatsUseCase
	renderRequest *requestUsecases.RenderRequestUseCase

	uploadFile *uploadUsecases.UploadFileUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r, s, log := c.repos, c.svcs, c.log
	populator := requestUsecases.NewPopulator(r.request, r.customer, r.tag, r.user)
	maxUploadBytes := int64(c.cfg.Storage.MaxUploadMB) << 20

	return &allUseCases{
		registerUser: identityUsecases.NewRegisterUserUseCase(r.user, s.hasher, s.jwt, log),
		login:        identityUsecases.NewLoginUseCase(r.user, s.hasher, s.jwt, log),
		getProfile:   identityUsecases.NewGetProfileUseCase(r.user, log),
		listUsers:    identityUsecases.NewListUsersUseCase(r.user, log),

		createCustomer:  customerUsecases.NewCreateCustomerUseCase(r.customer, log),
		updateCustomer:  customerUsecases.NewUpdateCustomerUseCase(r.customer, log),
		deleteCustomer:  customerUsecases.NewDeleteCustomerUseCase(r.customer, log),
		getCustomer:     customerUsecases.NewGetCustomerUseCase(r.customer),
		listCustomers:   customerUsecases.NewListCustomersUseCase(r.customer, log),
		searchCustomers: customerUsecases.NewSearchCustomersUseCase(r.customer, log),

		createTag:          tagUsecases.NewCreateTagUseCase(r.tag, log),
		updateTag:          tagUsecases.NewUpdateTagUseCase(r.tag, log),
		deleteTag:          tagUsecases.NewDeleteTagUseCase(r.tag, log),
		getTag:             tagUsecases.NewGetTagUseCase(r.tag),
		listTags:           tagUsecases.NewListTagsUseCase(r.tag, log),
		listTagsByCategory: tagUsecases.NewListTagsByCategoryUseCase(r.tag, log),
		tagStats:           tagUsecases.NewTagStatsUseCase(r.tag, log),

		createRequest: requestUsecases.NewCreateRequestUseCase(r.request, s.sequences, s.txManager, populator, log),
		listRequests:  requestUsecases.NewListRequestsUseCase(r.request, populator, log),
		getRequest:    requestUsecases.NewGetRequestUseCase(r.request, populator),
		updateRequest: requestUsecases.NewUpdateRequestUseCase(r.request, s.txManager, populator, r.user, s.notifier, log),
		deleteRequest: requestUsecases.NewDeleteRequestUseCase(r.request, log),
		addComment:    requestUsecases.NewAddCommentUseCase(r.request, r.user, s.txManager, populator, s.notifier, log),
		findSimilar:   requestUsecases.NewFindSimilarUseCase(r.request, log),
		requestStats:  requestUsecases.NewRequestStatsUseCase(r.stats, log),
		renderRequest: requestUsecases.NewRenderRequestUseCase(r.request, r.user, s.renderer, log),

		uploadFile: uploadUsecases.NewUploadFileUseCase(s.storage, maxUploadBytes, log),
	}
}
