package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func ErrorsToStrings(errors []error) []string {
	strs := make([]string, 0, len(errors))
	for _, err := range errors {
		strs = append(strs, err.Error())
	}
	return strs
}
