package test

import (
	"go.uber.org/mock/gomock"

	"github.com/Crimone/Scoparia/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().Get(gomock.Any()).
		DoAndReturn(func(id string) string {
			return id
		}).AnyTimes()
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return dummyTextWithVals(id, vals)
		}).AnyTimes()
}

func dummyTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().CycleCompleted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().SubscriberCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().SiteFetched(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ThreadResolved(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PostResolved(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NotificationSent(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NotificationFailed(gomock.Any()).AnyTimes()
}
