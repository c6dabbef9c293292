package errors

import "fmt"

// UnsupportedProviderError indica que la URL no corresponde a ningún
// proveedor soportado. El mensaje es parte del contrato de la API HTTP.
type UnsupportedProviderError struct {
	URL string
}

func (e *UnsupportedProviderError) Error() string {
	return "Unsupported git provider or invalid URL"
}

// NewUnsupportedProviderError crea un nuevo error de proveedor no soportado
func NewUnsupportedProviderError(url string) *UnsupportedProviderError {
	return &UnsupportedProviderError{URL: url}
}

// InvalidReferenceError indica que la referencia parseada no tiene todos los
// identificadores que el proveedor necesita. Provider va en forma de display
// ("GitHub") y Kind es "PR" o "MR".
type InvalidReferenceError struct {
	Provider string
	Kind     string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("Invalid %s %s URL format", e.Provider, e.Kind)
}

// NewInvalidReferenceError crea un nuevo error de referencia inválida
func NewInvalidReferenceError(provider, kind string) *InvalidReferenceError {
	return &InvalidReferenceError{Provider: provider, Kind: kind}
}

// ProviderAPIError indica una respuesta no exitosa de la API del proveedor
// al pedir la metadata del PR/MR.
type ProviderAPIError struct {
	Kind       string
	StatusCode int
	Body       string
}

func (e *ProviderAPIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("Failed to fetch %s details: %d - %s", e.Kind, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("Failed to fetch %s details: %d", e.Kind, e.StatusCode)
}

// NewProviderAPIError crea un nuevo error de API del proveedor
func NewProviderAPIError(kind string, status int, body string) *ProviderAPIError {
	return &ProviderAPIError{Kind: kind, StatusCode: status, Body: body}
}

// NetworkError envuelve una falla de transporte hacia el proveedor.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError crea un nuevo error de red
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Err: err}
}

// DiffFetchError indica una falla al obtener el diff. El mensaje conserva el
// formato plano con prefijo "Error:" que expone la API HTTP.
type DiffFetchError struct {
	Message string
}

func (e *DiffFetchError) Error() string {
	return e.Message
}

// NewDiffFetchError crea un nuevo error de obtención de diff
func NewDiffFetchError(format string, args ...any) *DiffFetchError {
	return &DiffFetchError{Message: fmt.Sprintf(format, args...)}
}
