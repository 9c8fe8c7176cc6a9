package shared

const (
	AdminID = "admin_id"
	TokenID = "token_jti"

	PageHome     = "home"
	PageProjects = "projects"
	PageSkills   = "skills"
	PageCv       = "cv"
	PageContact  = "contact"
)

// PageNames lists every page that can carry SEO metadata.
var PageNames = []string{PageHome, PageProjects, PageSkills, PageCv, PageContact}
