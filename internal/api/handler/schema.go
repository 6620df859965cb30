package handler

// --- Request / Response types ---

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type createSiteRequest struct {
	ID               string `json:"id"                 validate:"required"`
	URL              string `json:"url"                validate:"required,url"`
	TurnstileSiteKey string `json:"turnstile_site_key" validate:"required"`
}

// submitCommentRequest carries a public comment submission. Username is
// optional: anonymous posts are attributed to the submitter's derived
// handle. The required-field gate lives in the admission pipeline, not
// here, so the rejection order matches the service contract.
type submitCommentRequest struct {
	SiteID         string `json:"site_id"`
	Username       string `json:"username"`
	Content        string `json:"content"`
	TurnstileToken string `json:"turnstile_token"`
}

type applyCodeRequest struct {
	TurnstileToken string `json:"turnstile_token"`
	URL            string `json:"url"`
}

type applyCodeResponse struct {
	Message string `json:"message"`
	SiteID  string `json:"site_id"`
}
