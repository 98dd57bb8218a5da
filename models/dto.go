package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	Author      string   `json:"author"`
	Keywords    []string `json:"keywords"`
	ImageURL    string   `json:"image_url"`
	SourceURL   string   `json:"source_url"`
	Issue       string   `json:"issue"`
}

type UpdateArticleRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Summary     *string   `json:"summary"`
	Author      *string   `json:"author"`
	Keywords    *[]string `json:"keywords"`
	ImageURL    *string   `json:"image_url"`
	SourceURL   *string   `json:"source_url"`
	Issue       *string   `json:"issue"`
}

// PositionAssignment is one entry of a drag-and-drop reorder result.
type PositionAssignment struct {
	ID       string `json:"id" binding:"required"`
	Position int    `json:"position"`
}

type ReorderRequest struct {
	Assignments []PositionAssignment `json:"assignments" binding:"required,min=1"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type MarkCommentsViewedRequest struct {
	CommentIDs []string `json:"comment_ids" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
}

type SetIssuePreferenceRequest struct {
	Issue string `json:"issue" binding:"required"`
}

type ArticleListParams struct {
	Issue  string `form:"issue"`
	Search string `form:"q"`
}
