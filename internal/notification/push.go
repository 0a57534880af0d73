package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
)

// PushClient talks to the push relay that fans messages out to devices.
// No retries: a failed delivery is logged by the caller and dropped.
type PushClient struct {
	client  http.Client
	baseURL string
}

type pushRequest struct {
	FCMToken string  `json:"fcm_token"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Data     Payload `json:"data"`
}

func NewPushClient(baseURL string) PushClient {
	return PushClient{
		client:  *http.DefaultClient,
		baseURL: baseURL,
	}
}

func (p PushClient) SendPush(fcmToken, title, body string, data Payload) error {
	reqData, err := json.Marshal(pushRequest{
		FCMToken: fcmToken,
		Title:    title,
		Body:     body,
		Data:     data,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, p.baseURL+"/send-notification", bytes.NewReader(reqData))
	if err != nil {
		return err
	}
	req.Header.Add("content-type", "application/json")
	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		errBody, err := ioutil.ReadAll(res.Body)
		if err != nil {
			errBody = []byte(`unable to read body`)
		}
		return errors.New(fmt.Sprintf("got status code %d when sending push: err %s", res.StatusCode, string(errBody)))
	}
	return nil
}
