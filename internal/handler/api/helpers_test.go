//go:build unit

package api_test

import "travelmate/internal/handler/dto/request"

func registerValidators() error {
	return request.RegisterValidators()
}
