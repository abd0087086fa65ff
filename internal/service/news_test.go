package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"contact_news/internal/config"
	"contact_news/internal/domain"
	"contact_news/internal/logging"
	"contact_news/internal/service/mocks"
	"contact_news/testdata/utils"
)

type NewsServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	contacts  *mocks.MockContactStore
	news      *mocks.MockNewsStore
	provider  *mocks.MockNewsProvider
	publisher *mocks.MockPublisher

	service *NewsService
	cfg     config.NewsConfig
	logger  *slog.Logger
	now     time.Time

	userID  uuid.UUID
	contact *domain.Contact
}

func (s *NewsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.contacts = mocks.NewMockContactStore(s.ctrl)
	s.news = mocks.NewMockNewsStore(s.ctrl)
	s.provider = mocks.NewMockNewsProvider(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.NewsConfig{
		Window:   30 * 24 * time.Hour,
		Language: "en",
		SortBy:   "relevancy",
		PageSize: 5,
	}
	s.logger = logging.Discard()
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	s.userID = uuid.New()
	s.contact = &domain.Contact{
		ID:                   uuid.New(),
		UserID:               s.userID,
		FullName:             "Jane Doe",
		CompanyName:          utils.Ptr("Acme Corp"),
		RelationshipPriority: 9,
	}

	s.service = NewNewsService(
		NewContactAuthorizer(s.contacts),
		s.provider,
		s.news,
		s.publisher,
		s.logger,
		s.cfg,
	)
	s.service.now = func() time.Time { return s.now }
}

func (s *NewsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNewsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewsServiceTestSuite))
}

func (s *NewsServiceTestSuite) expectContact(ctx context.Context) {
	s.contacts.EXPECT().GetContact(ctx, s.contact.ID).Return(s.contact, nil)
}

func (s *NewsServiceTestSuite) expectSearch(ctx context.Context, articles ...domain.ProviderArticle) {
	s.provider.EXPECT().Search(ctx, domain.SearchQuery{
		Query:    "Acme Corp",
		From:     s.now.Add(-30 * 24 * time.Hour),
		Language: "en",
		SortBy:   "relevancy",
		PageSize: 5,
	}).Return(&domain.SearchResult{TotalResults: 42, Articles: articles}, nil)
}

func insertEcho(_ context.Context, a *domain.NewsArticle) (*domain.NewsArticle, error) {
	saved := *a
	saved.ID = uuid.New()
	saved.CreatedAt = a.FetchedAt
	return &saved, nil
}

func (s *NewsServiceTestSuite) TestFetchNews_SavesNewArticles() {
	ctx := context.Background()
	published := s.now.Add(-48 * time.Hour)

	s.expectContact(ctx)
	s.expectSearch(ctx,
		domain.ProviderArticle{SourceName: "Reuters", Title: "Acme raises", URL: "https://news.example/1", Description: "Funding round", PublishedAt: published},
		domain.ProviderArticle{SourceName: "Bloomberg", Title: "Acme hires", URL: "https://news.example/2", Description: "New CTO", PublishedAt: published},
	)

	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/1").Return(nil, nil)
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/2").Return(nil, nil)
	s.news.EXPECT().InsertNews(ctx, gomock.Any()).DoAndReturn(insertEcho).Times(2)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(42, res.ArticlesFound)
	s.Equal(2, res.ArticlesSaved)
	s.Equal(2, res.Inserted)
	s.Require().Len(res.Articles, 2)
	for _, a := range res.Articles {
		s.Equal(s.contact.ID, a.ContactID)
		s.Equal(s.now, a.FetchedAt)
		s.Equal(published, a.PublishedAt)
		s.NotNil(a.Topics)
		s.Empty(a.Topics)
	}
	s.Equal("Reuters", res.Articles[0].Source)
	s.Equal("Funding round", res.Articles[0].Summary)
}

func (s *NewsServiceTestSuite) TestFetchNews_SearchQueryFallsBackToName() {
	ctx := context.Background()
	s.contact.CompanyName = utils.Ptr("   ")
	s.contact.FullName = "  Jane Doe "

	s.expectContact(ctx)
	s.provider.EXPECT().Search(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
			s.Equal("Jane Doe", q.Query)
			return &domain.SearchResult{}, nil
		},
	)

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(0, res.ArticlesSaved)
	s.NotNil(res.Articles)
}

func (s *NewsServiceTestSuite) TestFetchNews_SkipsIncompleteArticles() {
	ctx := context.Background()

	s.expectContact(ctx)
	s.expectSearch(ctx,
		domain.ProviderArticle{Title: "", URL: "https://news.example/no-title"},
		domain.ProviderArticle{Title: "No URL", URL: ""},
		domain.ProviderArticle{Title: "Complete", URL: "https://news.example/ok"},
	)

	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/ok").Return(nil, nil)
	s.news.EXPECT().InsertNews(ctx, gomock.Any()).DoAndReturn(insertEcho)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(1, res.ArticlesSaved)
	s.Equal("Complete", res.Articles[0].Title)
}

func (s *NewsServiceTestSuite) TestFetchNews_ExistingArticleCountedNotInserted() {
	ctx := context.Background()
	existing := &domain.NewsArticle{
		ID:        uuid.New(),
		ContactID: s.contact.ID,
		Title:     "Acme raises",
		URL:       "https://news.example/1",
		FetchedAt: s.now.Add(-time.Hour),
	}

	s.expectContact(ctx)
	s.expectSearch(ctx, domain.ProviderArticle{Title: "Acme raises", URL: "https://news.example/1"})
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/1").Return(existing, nil)

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(1, res.ArticlesSaved)
	s.Equal(0, res.Inserted)
	s.Equal(existing.ID, res.Articles[0].ID)
}

func (s *NewsServiceTestSuite) TestFetchNews_IdempotentRefetch() {
	ctx := context.Background()
	article := domain.ProviderArticle{Title: "Acme raises", URL: "https://news.example/1"}
	stored := map[string]*domain.NewsArticle{}

	s.contacts.EXPECT().GetContact(ctx, s.contact.ID).Return(s.contact, nil).Times(2)
	s.provider.EXPECT().Search(ctx, gomock.Any()).Return(
		&domain.SearchResult{TotalResults: 1, Articles: []domain.ProviderArticle{article}}, nil,
	).Times(2)
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, article.URL).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, url string) (*domain.NewsArticle, error) {
			return stored[url], nil
		},
	).Times(2)
	s.news.EXPECT().InsertNews(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, a *domain.NewsArticle) (*domain.NewsArticle, error) {
			saved, _ := insertEcho(ctx, a)
			stored[a.URL] = saved
			return saved, nil
		},
	).Times(1)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	first, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)
	s.Require().NoError(err)
	second, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)
	s.Require().NoError(err)

	s.Equal(first.ArticlesSaved, second.ArticlesSaved)
	s.Equal(1, first.Inserted)
	s.Equal(0, second.Inserted)
	s.Len(stored, 1)
	s.Equal(first.Articles[0].ID, second.Articles[0].ID)
}

func (s *NewsServiceTestSuite) TestFetchNews_ExistenceCheckErrorSkipsOnlyThatArticle() {
	ctx := context.Background()

	s.expectContact(ctx)
	s.expectSearch(ctx,
		domain.ProviderArticle{Title: "Broken", URL: "https://news.example/broken"},
		domain.ProviderArticle{Title: "Fine", URL: "https://news.example/fine"},
	)
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/broken").Return(nil, errors.New("connection reset"))
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/fine").Return(nil, nil)
	s.news.EXPECT().InsertNews(ctx, gomock.Any()).DoAndReturn(insertEcho)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(1, res.ArticlesSaved)
	s.Equal("Fine", res.Articles[0].Title)
}

func (s *NewsServiceTestSuite) TestFetchNews_InsertErrorIsSkipped() {
	ctx := context.Background()

	s.expectContact(ctx)
	s.expectSearch(ctx,
		domain.ProviderArticle{Title: "One", URL: "https://news.example/1"},
		domain.ProviderArticle{Title: "Two", URL: "https://news.example/2"},
	)
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		s.news.EXPECT().InsertNews(ctx, gomock.Any()).Return(nil, errors.New("value too long")),
		s.news.EXPECT().InsertNews(ctx, gomock.Any()).DoAndReturn(insertEcho),
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(1, res.ArticlesSaved)
	s.Equal("Two", res.Articles[0].Title)
}

func (s *NewsServiceTestSuite) TestFetchNews_DuplicateOnInsertTreatedAsExisting() {
	ctx := context.Background()
	winner := &domain.NewsArticle{ID: uuid.New(), ContactID: s.contact.ID, Title: "Race", URL: "https://news.example/race"}

	s.expectContact(ctx)
	s.expectSearch(ctx, domain.ProviderArticle{Title: "Race", URL: "https://news.example/race"})
	gomock.InOrder(
		s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/race").Return(nil, nil),
		s.news.EXPECT().InsertNews(ctx, gomock.Any()).Return(nil, domain.ErrDuplicateArticle),
		s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, "https://news.example/race").Return(winner, nil),
	)

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(1, res.ArticlesSaved)
	s.Equal(0, res.Inserted)
	s.Equal(winner.ID, res.Articles[0].ID)
}

func (s *NewsServiceTestSuite) TestFetchNews_PublisherErrorDoesNotFail() {
	ctx := context.Background()

	s.expectContact(ctx)
	s.expectSearch(ctx, domain.ProviderArticle{Title: "One", URL: "https://news.example/1"})
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, gomock.Any()).Return(nil, nil)
	s.news.EXPECT().InsertNews(ctx, gomock.Any()).DoAndReturn(insertEcho)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("channel closed"))

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(1, res.ArticlesSaved)
}

func (s *NewsServiceTestSuite) TestFetchNews_PublisherNil() {
	ctx := context.Background()

	service := NewNewsService(NewContactAuthorizer(s.contacts), s.provider, s.news, nil, s.logger, s.cfg)
	service.now = func() time.Time { return s.now }

	s.expectContact(ctx)
	s.expectSearch(ctx, domain.ProviderArticle{Title: "One", URL: "https://news.example/1"})
	s.news.EXPECT().FindNewsByURL(ctx, s.contact.ID, gomock.Any()).Return(nil, nil)
	s.news.EXPECT().InsertNews(ctx, gomock.Any()).DoAndReturn(insertEcho)

	res, err := service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Require().NoError(err)
	s.Equal(1, res.Inserted)
}

func (s *NewsServiceTestSuite) TestFetchNews_ProviderError() {
	ctx := context.Background()

	s.expectContact(ctx)
	s.provider.EXPECT().Search(ctx, gomock.Any()).Return(nil, &domain.ProviderError{Provider: "newsapi", StatusCode: 429})

	res, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	s.Nil(res)
	var perr *domain.ProviderError
	s.Require().ErrorAs(err, &perr)
	s.Equal(429, perr.StatusCode)
}

func (s *NewsServiceTestSuite) TestFetchNews_ConfigurationError() {
	ctx := context.Background()

	s.expectContact(ctx)
	s.provider.EXPECT().Search(ctx, gomock.Any()).Return(nil, &domain.ConfigurationError{Setting: "news.api_key"})

	_, err := s.service.FetchNews(ctx, s.contact.ID, s.userID)

	var cerr *domain.ConfigurationError
	s.Require().ErrorAs(err, &cerr)
}

func (s *NewsServiceTestSuite) TestFetchNews_ForeignContact() {
	ctx := context.Background()

	s.expectContact(ctx)

	res, err := s.service.FetchNews(ctx, s.contact.ID, uuid.New())

	s.Nil(res)
	s.ErrorIs(err, domain.ErrNotFoundOrUnauthorized)
}

func (s *NewsServiceTestSuite) TestBuildArticle_Defaults() {
	long := make([]rune, 400)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name        string
		in          domain.ProviderArticle
		wantSource  string
		wantSummary string
	}{
		{"description wins", domain.ProviderArticle{SourceName: "AP", Description: "desc", Content: "content"}, "AP", "desc"},
		{"content prefix", domain.ProviderArticle{Content: string(long)}, domain.UnknownSource, string(long[:300])},
		{"short content", domain.ProviderArticle{Content: "brief"}, domain.UnknownSource, "brief"},
		{"nothing", domain.ProviderArticle{}, domain.UnknownSource, ""},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			a := s.service.buildArticle(s.contact.ID, &tt.in)
			s.Equal(tt.wantSource, a.Source)
			s.Equal(tt.wantSummary, a.Summary)
			s.Equal(s.contact.ID, a.ContactID)
		})
	}
}
