package models

// Provider identifica el servicio de hosting git del que proviene un PR/MR.
type Provider string

const (
	ProviderGitHub    Provider = "github"
	ProviderGitLab    Provider = "gitlab"
	ProviderBitbucket Provider = "bitbucket"
	ProviderUnknown   Provider = "unknown"
)

type (
	// ParsedReference es el resultado de clasificar una URL de PR/MR.
	// Es inmutable y se deriva solo del string de la URL: si Provider es
	// ProviderUnknown el resto de los campos queda vacío.
	ParsedReference struct {
		Provider Provider

		// GitHub y Bitbucket
		Owner    string
		Repo     string
		PRNumber string

		// GitLab
		ProjectPath string
		MRNumber    string
	}

	// PRDetails contiene la metadata de una Pull Request. Title, Description,
	// Author y State siempre vienen poblados, aunque sea con valores
	// sintetizados cuando el proveedor no respondió.
	PRDetails struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Author      string   `json:"author"`
		State       string   `json:"state"`
		CreatedAt   string   `json:"created_at,omitempty"`
		UpdatedAt   string   `json:"updated_at,omitempty"`
		BaseBranch  string   `json:"base_branch,omitempty"`
		HeadBranch  string   `json:"head_branch,omitempty"`
		Provider    Provider `json:"provider,omitempty"`
		Note        string   `json:"note,omitempty"`
	}

	// ReviewResult es el resultado de generar una review: exactamente uno de
	// Review o Err está seteado.
	ReviewResult struct {
		Review string
		Err    string
	}

	// InlineCommentsResult es el resultado de generar comentarios inline:
	// exactamente uno de Comments o Err está seteado.
	InlineCommentsResult struct {
		Comments []string
		Err      string
	}

	// ReviewReport es la respuesta completa que arma el servicio de reviews.
	ReviewReport struct {
		PRDetails      PRDetails `json:"pr_details"`
		Review         string    `json:"review"`
		InlineComments []string  `json:"inline_comments"`
		PRScore        int       `json:"pr_score"`
		Suggestions    []string  `json:"suggestions"`
	}
)

// Text retorna el cuerpo de la review, o el mensaje de error si la
// generación falló.
func (r ReviewResult) Text() string {
	if r.Review != "" {
		return r.Review
	}
	return r.Err
}

// Lines retorna los comentarios inline, o el mensaje de error como único
// elemento si la generación falló.
func (r InlineCommentsResult) Lines() []string {
	if r.Err != "" {
		return []string{r.Err}
	}
	return r.Comments
}
