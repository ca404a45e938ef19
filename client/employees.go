package client

import (
	"context"
	"fmt"
)

type EmployeesEndpoint struct {
	transport *Transport
}

func (e *EmployeesEndpoint) List(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := e.transport.Get(ctx, "/v1/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (e *EmployeesEndpoint) Create(ctx context.Context, input EmployeeInput) (*Employee, error) {
	var created Employee
	if err := e.transport.Post(ctx, "/v1/employees", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (e *EmployeesEndpoint) Update(ctx context.Context, id int64, input EmployeeInput) (*Employee, error) {
	var updated Employee
	if err := e.transport.Put(ctx, fmt.Sprintf("/v1/employees/%d", id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (e *EmployeesEndpoint) Delete(ctx context.Context, id int64) error {
	return e.transport.Delete(ctx, fmt.Sprintf("/v1/employees/%d", id))
}
