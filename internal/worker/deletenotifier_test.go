package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"accounts/internal/account"
	"accounts/internal/worker"
	"accounts/pkg/domain"
	"accounts/pkg/logger"
	mocknotifier "accounts/pkg/notifier/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args account.DeleteNotificationArgs) *river.Job[account.DeleteNotificationArgs] {
	return &river.Job[account.DeleteNotificationArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

func TestDeleteNotificationWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewDeleteNotificationWorker(mock)

	id := uuid.New()
	args := account.DeleteNotificationArgs{
		AccountID: id.String(),
		Username:  "jdoe",
		FirstName: "John",
		LastName:  "Doe",
	}

	mock.EXPECT().SendDeleteNotification(gomock.Any(), id.String(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, acc domain.Account) error {
			require.Equal(t, domain.AccountID(id), acc.ID)
			require.Equal(t, "jdoe", acc.Username)
			require.Equal(t, "John", acc.FirstName)
			require.Equal(t, "Doe", acc.LastName)
			require.Empty(t, acc.Password)

			return nil
		},
	)

	require.NoError(t, w.Work(context.Background(), makeJob(1, args)))
}

func TestDeleteNotificationWorker_Work_DeliveryFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewDeleteNotificationWorker(mock)

	id := uuid.New().String()
	mock.EXPECT().SendDeleteNotification(gomock.Any(), id, gomock.Any()).Return(errors.New("stream down"))

	// a plain error makes River retry the job, so it must not be a cancel
	err := w.Work(context.Background(), makeJob(2, account.DeleteNotificationArgs{AccountID: id}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestDeleteNotificationWorker_Work_MalformedIDCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewDeleteNotificationWorker(mock)

	mock.EXPECT().SendDeleteNotification(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := w.Work(context.Background(), makeJob(3, account.DeleteNotificationArgs{AccountID: "not-a-uuid"}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
