package service

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jakestbu/nilch/internal/pkg/logger"
	"github.com/jakestbu/nilch/internal/search/biz"
	"github.com/jakestbu/nilch/internal/search/types"
	"github.com/jakestbu/nilch/internal/view"
)

const (
	themeCookie = "theme"
	themeDark   = "dark"
	themeLight  = "light"
	themeMaxAge = int(365 * 24 * time.Hour / time.Second)
	siteName    = "nilch"
)

// Config holds the display settings of the search pages.
type Config struct {
	Defaults   types.StateDefaults
	IconBase   string
	TotalPages int
}

// SearchService serves the search pages.
type SearchService struct {
	uc     *biz.SearchUseCase
	cfg    Config
	logger *logger.Logger
}

// NewSearchService creates the search HTTP service.
func NewSearchService(uc *biz.SearchUseCase, cfg Config, log *logger.Logger) *SearchService {
	if cfg.TotalPages <= 0 {
		cfg.TotalPages = view.DefaultTotalPages
	}
	return &SearchService{
		uc:     uc,
		cfg:    cfg,
		logger: log,
	}
}

// RegisterRoutes mounts the page routes.
func (s *SearchService) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", s.Home)
	r.GET("/search", s.WebSearch)
	r.GET("/images", s.ImageSearch)
	r.GET("/videos", s.VideoSearch)
	r.GET("/settings/theme", s.ToggleTheme)
}

// Home renders the landing page.
func (s *SearchService) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", &view.HomePage{
		Title:    siteName,
		Theme:    themeOf(c),
		Safe:     string(s.cfg.Defaults.Safe),
		Language: s.cfg.Defaults.Language,
		Engines:  s.engineOptions(s.uc.Engines().Default().ID),
	})
}

// WebSearch serves the web modality. Bang resolution runs first: a matching
// bang becomes a 302 to the external site and the backend is never called.
// An unknown trigger falls through with the full raw string, bang prefix
// included, as the literal query.
func (s *SearchService) WebSearch(c *gin.Context) {
	if target, ok := s.uc.ResolveBang(c.Query(types.ParamQuery)); ok {
		c.Redirect(http.StatusFound, target)
		return
	}
	s.renderSearch(c, types.ModalityWeb)
}

// ImageSearch serves the image modality. Bangs are a web-search-box
// behavior and do not apply here.
func (s *SearchService) ImageSearch(c *gin.Context) {
	s.renderSearch(c, types.ModalityImage)
}

// VideoSearch serves the video modality.
func (s *SearchService) VideoSearch(c *gin.Context) {
	s.renderSearch(c, types.ModalityVideo)
}

// ToggleTheme flips the display theme cookie and returns to the referring
// page. The cookie is the only piece of state that outlives a page load.
func (s *SearchService) ToggleTheme(c *gin.Context) {
	next := themeLight
	if themeOf(c) == themeLight {
		next = themeDark
	}
	c.SetCookie(themeCookie, next, themeMaxAge, "/", "", false, true)

	target := c.GetHeader("Referer")
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}

func (s *SearchService) renderSearch(c *gin.Context, m types.Modality) {
	state := types.ParseState(m, c.Request.URL.Query(), s.cfg.Defaults)
	load := s.uc.Load(c.Request.Context(), state)

	if load.Action.Kind == biz.Renavigate {
		c.Redirect(http.StatusFound, load.Action.Target)
		return
	}

	status := http.StatusOK
	if load.Action.Kind == biz.RenderError {
		status = http.StatusBadGateway
	}
	c.HTML(status, "results.tmpl", s.buildPage(c, state, load))
}

func (s *SearchService) buildPage(c *gin.Context, state types.PageState, load biz.PageLoad) *view.ResultsPage {
	current := s.uc.Engines().Resolve(state.Engine)

	page := &view.ResultsPage{
		Title:    pageTitle(state.Query),
		Theme:    themeOf(c),
		Query:    state.Query,
		Modality: string(state.Modality),
		Safe:     string(state.Safe),
		Language: state.Language,
		Engines:  s.engineOptions(current.ID),
		Tabs:     modalityTabs(state),
	}

	switch load.Action.Kind {
	case biz.RenderResults:
		outcome := load.Outcome
		switch state.Modality {
		case types.ModalityImage:
			page.Images = view.BuildImageItems(outcome.Images)
		case types.ModalityVideo:
			page.Videos = view.BuildVideoItems(outcome.Videos)
			page.Links = view.Paginate(state, s.cfg.TotalPages)
		default:
			page.Web = view.BuildWebItems(outcome.Web, s.cfg.IconBase)
			page.Infobox = view.BuildInfobox(outcome.Infobox)
			page.Links = view.Paginate(state, s.cfg.TotalPages)
		}
		page.TookMS = outcome.Took

	case biz.RenderEmpty:
		page.Message = &view.Message{
			Title:    "No results found",
			Body:     "Nothing came back for this search. Try different terms, or run it on another engine.",
			LinkURL:  load.Action.Target,
			LinkText: "Search " + load.Alternate.DisplayName,
		}

	case biz.RenderInputError:
		page.Message = &view.Message{
			Title: "Please enter a search query",
		}

	case biz.RenderRateLimited:
		page.Message = &view.Message{
			Title:    "The search backend is rate-limited right now",
			Body:     "Your search was already retried once. Wait a moment and try again, or run the same query elsewhere.",
			LinkURL:  load.Action.Target,
			LinkText: "Search " + load.Alternate.DisplayName,
		}

	case biz.RenderError:
		page.Message = &view.Message{
			Title: "Something went wrong",
			Body:  load.Action.Detail,
		}
	}

	return page
}

func (s *SearchService) engineOptions(selectedID string) []view.EngineOption {
	list := s.uc.Engines().List()
	opts := make([]view.EngineOption, 0, len(list))
	for _, e := range list {
		opts = append(opts, view.EngineOption{
			ID:       e.ID,
			Name:     e.DisplayName,
			Selected: e.ID == selectedID,
		})
	}
	return opts
}

// modalityTabs links the three result kinds for the current query.
// Switching modality resets the page index and drops the retry marker.
func modalityTabs(state types.PageState) []view.Tab {
	link := func(m types.Modality) string {
		s := state
		s.Modality = m
		s.Page = 0
		s.FailedOnce = false
		return s.URL()
	}
	return []view.Tab{
		{Label: "Web", URL: link(types.ModalityWeb), Active: state.Modality == types.ModalityWeb},
		{Label: "Images", URL: link(types.ModalityImage), Active: state.Modality == types.ModalityImage},
		{Label: "Videos", URL: link(types.ModalityVideo), Active: state.Modality == types.ModalityVideo},
	}
}

func pageTitle(query string) string {
	if query == "" {
		return siteName
	}
	return query + " - " + siteName
}

func themeOf(c *gin.Context) string {
	if v, err := c.Cookie(themeCookie); err == nil && (v == themeLight || v == themeDark) {
		return v
	}
	return themeDark
}
