// Package api handles incoming HTTP requests for the car, order, product and
// user resources. Handlers decode request bodies, call the resource services
// and translate their results into status codes and JSON bodies:
//
//   - a missing record becomes 404 {"error": "<Resource> not found"}
//   - a body that is not valid JSON for the resource becomes 400
//   - any other failure goes through HandleAPIError, which logs the redacted
//     error and answers with a generic message and the request's trace ID
package api
