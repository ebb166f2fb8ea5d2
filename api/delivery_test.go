package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	mockdb "github.com/merrydance/fleetops/db/mock"
	db "github.com/merrydance/fleetops/db/sqlc"
	"github.com/merrydance/fleetops/util"
	mockwk "github.com/merrydance/fleetops/worker/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func randomDelivery(t *testing.T) db.Delivery {
	pickupLat, err := numericFromFloat(24.7136)
	require.NoError(t, err)
	pickupLng, err := numericFromFloat(46.6753)
	require.NoError(t, err)
	dropoffLat, err := numericFromFloat(24.7743)
	require.NoError(t, err)
	dropoffLng, err := numericFromFloat(46.7386)
	require.NoError(t, err)

	return db.Delivery{
		ID:               util.RandomInt(1, 1000),
		Reference:        util.RandomString(12),
		PickupAddress:    util.RandomString(20),
		PickupLatitude:   pickupLat,
		PickupLongitude:  pickupLng,
		DropoffAddress:   util.RandomString(20),
		DropoffLatitude:  dropoffLat,
		DropoffLongitude: dropoffLng,
		Status:           "pending",
		ScheduledAt:      time.Now(),
	}
}

func requireBodyMatchDelivery(t *testing.T, body *bytes.Buffer, delivery db.Delivery) {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var got deliveryResponse
	err = json.Unmarshal(data, &got)
	require.NoError(t, err)
	require.Equal(t, delivery.ID, got.ID)
	require.Equal(t, delivery.Reference, got.Reference)
	require.Equal(t, delivery.Status, got.Status)
}

func TestCreateDeliveryAPI(t *testing.T) {
	userID := util.RandomInt(1, 1000)
	delivery := randomDelivery(t)

	body := gin.H{
		"reference":         delivery.Reference,
		"pickup_address":    delivery.PickupAddress,
		"pickup_latitude":   24.7136,
		"pickup_longitude":  46.6753,
		"dropoff_address":   delivery.DropoffAddress,
		"dropoff_latitude":  24.7743,
		"dropoff_longitude": 46.7386,
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OKEnqueuesDispatchTask",
			body: body,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					CreateDelivery(gomock.Any(), gomock.Any()).
					Times(1).
					Return(delivery, nil)
				distributor.EXPECT().
					DistributeTaskDispatchDelivery(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDelivery(t, recorder.Body, delivery)
			},
		},
		{
			name: "EnqueueFailureStillCreatesDelivery",
			body: body,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					CreateDelivery(gomock.Any(), gomock.Any()).
					Times(1).
					Return(delivery, nil)
				distributor.EXPECT().
					DistributeTaskDispatchDelivery(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(fmt.Errorf("redis unavailable"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				// 排队失败不影响创建结果，运单留在 pending 等人工指派
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDelivery(t, recorder.Body, delivery)
			},
		},
		{
			name: "DuplicateReference",
			body: body,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					CreateDelivery(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Delivery{}, db.ErrUniqueViolation)
				distributor.EXPECT().
					DistributeTaskDispatchDelivery(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "InvalidCoordinates",
			body: gin.H{
				"reference":         delivery.Reference,
				"pickup_address":    delivery.PickupAddress,
				"pickup_latitude":   95.0,
				"pickup_longitude":  46.6753,
				"dropoff_address":   delivery.DropoffAddress,
				"dropoff_latitude":  24.7743,
				"dropoff_longitude": 46.7386,
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					CreateDelivery(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServerWithTaskDistributor(t, store, distributor)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/deliveries", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGetDeliveryAPI(t *testing.T) {
	userID := util.RandomInt(1, 1000)
	delivery := randomDelivery(t)

	testCases := []struct {
		name          string
		deliveryID    int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:       "OK",
			deliveryID: delivery.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDelivery(gomock.Any(), gomock.Eq(delivery.ID)).
					Times(1).
					Return(delivery, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDelivery(t, recorder.Body, delivery)
			},
		},
		{
			name:       "NotFound",
			deliveryID: delivery.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDelivery(gomock.Any(), gomock.Eq(delivery.ID)).
					Times(1).
					Return(db.Delivery{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/deliveries/%d", tc.deliveryID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

// assignTxParamsMatcher 校验人工指派落库参数：
// 无 provider 配置时估算来源必须标记为 estimated，估算值必须为正
type assignTxParamsMatcher struct {
	deliveryID int64
	courierID  int64
}

func (m assignTxParamsMatcher) Matches(x interface{}) bool {
	arg, ok := x.(db.AssignDeliveryTxParams)
	if !ok {
		return false
	}
	return arg.DeliveryID == m.deliveryID &&
		arg.CourierID == m.courierID &&
		arg.EstimateSource == "estimated" &&
		arg.DistanceKm > 0 &&
		arg.DurationMinutes > 0
}

func (m assignTxParamsMatcher) String() string {
	return fmt.Sprintf("matches assign tx params for delivery %d courier %d with geometric estimate", m.deliveryID, m.courierID)
}

func TestAssignDeliveryAPI(t *testing.T) {
	userID := util.RandomInt(1, 1000)
	delivery := randomDelivery(t)
	courier := randomCourier(t, util.RandomInt(1, 1000))

	assigned := delivery
	assigned.Status = "assigned"

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OKGeometricEstimate",
			body: gin.H{"courier_id": courier.ID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDelivery(gomock.Any(), gomock.Eq(delivery.ID)).
					Times(1).
					Return(delivery, nil)
				store.EXPECT().
					GetCourier(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(courier, nil)
				store.EXPECT().
					AssignDeliveryTx(gomock.Any(), assignTxParamsMatcher{
						deliveryID: delivery.ID,
						courierID:  courier.ID,
					}).
					Times(1).
					Return(db.AssignDeliveryTxResult{Delivery: assigned}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDelivery(t, recorder.Body, assigned)
			},
		},
		{
			name: "AlreadyAssigned",
			body: gin.H{"courier_id": courier.ID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDelivery(gomock.Any(), gomock.Eq(delivery.ID)).
					Times(1).
					Return(assigned, nil)
				store.EXPECT().
					AssignDeliveryTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "CourierNotFound",
			body: gin.H{"courier_id": courier.ID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetDelivery(gomock.Any(), gomock.Eq(delivery.ID)).
					Times(1).
					Return(delivery, nil)
				store.EXPECT().
					GetCourier(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(db.Courier{}, db.ErrRecordNotFound)
				store.EXPECT().
					AssignDeliveryTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/deliveries/%d/assign", delivery.ID)
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
